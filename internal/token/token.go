// Package token issues and verifies the signed, expiring tokens embedded
// in email-confirmation links. Tokens are stateless: nothing is stored, so
// a token stays redeemable any number of times until it expires.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeEmailConfirm marks a token as an email-confirmation credential.
// The bearer-auth middleware rejects tokens carrying a scope claim, so a
// confirmation token can never be replayed as an access token.
const ScopeEmailConfirm = "email_confirm"

const defaultTTL = 24 * time.Hour

var (
	ErrTokenExpired = errors.New("confirmation token expired")
	ErrTokenInvalid = errors.New("confirmation token invalid")
)

type Confirmer struct {
	key []byte
	ttl time.Duration
}

func NewConfirmer(key []byte) *Confirmer {
	return &Confirmer{key: key, ttl: defaultTTL}
}

// Generate returns a signed token proving ownership of email.
func (c *Confirmer) Generate(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   email,
		"scope": ScopeEmailConfirm,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign confirmation token: %w", err)
	}
	return signed, nil
}

// Confirm verifies raw and returns the email it was issued for.
// Expired tokens yield ErrTokenExpired; everything else (bad signature,
// malformed, wrong scope) yields ErrTokenInvalid.
func (c *Confirmer) Confirm(raw string) (string, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return "", ErrTokenInvalid
	}
	if scope, _ := claims["scope"].(string); scope != ScopeEmailConfirm {
		return "", ErrTokenInvalid
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}
