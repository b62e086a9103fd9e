// Package secrets seals values that must be recoverable in plaintext later,
// such as employee app passwords and account API secrets.
//
// Sealed values are versioned: "v1." followed by base64url(nonce || ciphertext).
// The cipher is XChaCha20-Poly1305 keyed by HKDF-SHA256 over the server
// secret key, with the purpose bound as additional data.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	sealedVersion = "v1"
	hkdfInfo      = "essgate.secrets.v1"
	purposePrefix = "essgate.secret."
)

const (
	PurposeAppPassword = "app_password"
	PurposeAPISecret   = "api_secret"
)

var (
	ErrInvalidSealedValue = errors.New("invalid sealed value")
	ErrSecretKeyRequired  = errors.New("secret key is required")
)

type Box struct {
	aead cipher.AEAD
}

func NewBox(secretKey []byte) (*Box, error) {
	if len(secretKey) == 0 {
		return nil, ErrSecretKeyRequired
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secretKey, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive secrets key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init secrets aead: %w", err)
	}
	return &Box{aead: aead}, nil
}

// Seal encrypts plaintext for the given purpose. An empty plaintext seals to
// an empty string so "no value set" survives a round trip.
func (box *Box) Seal(purpose string, plaintext string) (string, error) {
	if box == nil || box.aead == nil {
		return "", errors.New("secrets box is not initialized")
	}
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, box.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate secrets nonce: %w", err)
	}

	ciphertext := box.aead.Seal(nil, nonce, []byte(plaintext), additionalData(purpose))
	payload := make([]byte, 0, len(nonce)+len(ciphertext))
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)

	return sealedVersion + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// Open reverses Seal. Values sealed for a different purpose or with a
// different key fail with ErrInvalidSealedValue.
func (box *Box) Open(purpose string, sealed string) (string, error) {
	if box == nil || box.aead == nil {
		return "", errors.New("secrets box is not initialized")
	}

	sealed = strings.TrimSpace(sealed)
	if sealed == "" {
		return "", nil
	}

	version, encodedPayload, found := strings.Cut(sealed, ".")
	if !found || version != sealedVersion || encodedPayload == "" {
		return "", ErrInvalidSealedValue
	}

	payload, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return "", ErrInvalidSealedValue
	}

	nonceSize := box.aead.NonceSize()
	if len(payload) <= nonceSize {
		return "", ErrInvalidSealedValue
	}

	plaintext, err := box.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], additionalData(purpose))
	if err != nil {
		return "", ErrInvalidSealedValue
	}
	return string(plaintext), nil
}

func additionalData(purpose string) []byte {
	return []byte(purposePrefix + strings.TrimSpace(purpose))
}
