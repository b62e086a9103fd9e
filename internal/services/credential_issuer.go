package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
	"github.com/terraincognita07/essgate/internal/security"
)

const apiTokenLength = 15

type Credentials struct {
	APIKey    string
	APISecret string
}

// CredentialIssuer keeps an account's API key once created and rotates the
// API secret on every call. The plaintext secret is only ever returned here.
type CredentialIssuer struct {
	box      SecretBox
	generate func(length int) (string, error)
}

func NewCredentialIssuer(box SecretBox) *CredentialIssuer {
	return &CredentialIssuer{box: box, generate: security.RandomAlphanumeric}
}

func (issuer *CredentialIssuer) Issue(ctx context.Context, accounts AccountRepository, account models.Account) (Credentials, error) {
	apiKey := ""
	if account.APIKey != nil {
		apiKey = *account.APIKey
	}
	if apiKey == "" {
		generated, err := issuer.generate(apiTokenLength)
		if err != nil {
			return Credentials{}, fmt.Errorf("generate api key: %w", err)
		}
		apiKey = generated
	}

	apiSecret, err := issuer.generate(apiTokenLength)
	if err != nil {
		return Credentials{}, fmt.Errorf("generate api secret: %w", err)
	}
	sealedSecret, err := issuer.box.Seal(secrets.PurposeAPISecret, apiSecret)
	if err != nil {
		return Credentials{}, fmt.Errorf("seal api secret: %w", err)
	}

	if err := accounts.UpdateAPICredentials(ctx, account.Username, apiKey, sealedSecret); err != nil {
		return Credentials{}, fmt.Errorf("store api credentials for %s: %w", account.Username, err)
	}
	return Credentials{APIKey: apiKey, APISecret: apiSecret}, nil
}
