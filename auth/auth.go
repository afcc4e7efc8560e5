package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v5"

	"github.com/andrewpaige1/todolists/config"
)

// CreateToken signs an HS256 token for subject that NewValidator accepts.
func CreateToken(cfg config.AuthConfig, subject string, ttl time.Duration) (string, error) {
	if !cfg.Enabled() {
		return "", fmt.Errorf("auth: JWT secret key not set")
	}
	if subject == "" {
		return "", fmt.Errorf("auth: subject is required")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return tokenString, nil
}

// NewValidator builds the bearer token validator used by the HTTP middleware.
func NewValidator(cfg config.AuthConfig) (*validator.Validator, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("auth: JWT secret key not set")
	}

	secret := []byte(cfg.Secret)
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	v, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to set up validator: %w", err)
	}
	return v, nil
}
