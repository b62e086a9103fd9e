package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

type Claims struct {
	Username string `json:"usr"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewManager(secretKey []byte, ttl time.Duration) (*Manager, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("session secret key is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secretKey: secretKey, ttl: ttl, now: time.Now}, nil
}

func (manager *Manager) TTL() time.Duration {
	return manager.ttl
}

// Issue signs a session token for the account.
func (manager *Manager) Issue(username string, role string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("session username is required")
	}
	now := manager.now()

	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(manager.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(manager.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

func (manager *Manager) Parse(rawToken string) (Claims, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return manager.secretKey, nil
	}, jwt.WithTimeFunc(manager.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid || strings.TrimSpace(claims.Username) == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
