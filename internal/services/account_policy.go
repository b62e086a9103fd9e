package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/terraincognita07/essgate/internal/models"
)

var ErrWeakPassword = errors.New("weak password")

var (
	usernameRegex   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._@-]{0,139}$`)
	employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]{0,139}$`)
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return ""
	}
	return email
}

// NormalizeCredentialsInput trims a console identifier and password and
// rejects blanks.
func NormalizeCredentialsInput(identifierRaw string, passwordRaw string) (string, string, error) {
	identifier := strings.TrimSpace(identifierRaw)
	password := strings.TrimSpace(passwordRaw)
	if identifier == "" || password == "" {
		return "", "", ErrInvalidCredentials
	}
	return identifier, password, nil
}

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return ErrInvalidInput
	}
	return nil
}

func ValidateEmployeeID(employeeID string) error {
	if !employeeIDRegex.MatchString(employeeID) {
		return ErrInvalidInput
	}
	return nil
}

func ValidateRole(role string) error {
	if !models.IsKnownRole(role) {
		return ErrInvalidInput
	}
	return nil
}

// ValidatePasswordStrength applies to console passwords: at least 8
// characters with an upper case letter, a lower case letter and a digit.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
