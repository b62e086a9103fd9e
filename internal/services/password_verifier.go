package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
)

// PasswordVerifier checks a supplied app password against the employee's
// sealed one. Comparison is byte-exact and constant time.
type PasswordVerifier struct {
	box SecretBox
}

func NewPasswordVerifier(box SecretBox) *PasswordVerifier {
	return &PasswordVerifier{box: box}
}

func (verifier *PasswordVerifier) Verify(employee models.Employee, supplied string) error {
	stored, err := verifier.box.Open(secrets.PurposeAppPassword, employee.AppPassword)
	if err != nil {
		return fmt.Errorf("open app password for %s: %w", employee.ID, err)
	}
	if stored == "" {
		return ErrPasswordNotSet
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func (verifier *PasswordVerifier) seal(plaintext string) (string, error) {
	sealed, err := verifier.box.Seal(secrets.PurposeAppPassword, plaintext)
	if err != nil {
		return "", fmt.Errorf("seal app password: %w", err)
	}
	return sealed, nil
}
