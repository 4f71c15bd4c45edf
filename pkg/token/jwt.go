package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is what gets embedded in a signed token. Only the fields relevant to
// the flow are set: {UserID, Role} for access and refresh tokens, {Email} for
// email verification, {UserID} for password resets.
type Payload struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	Email  string `json:"email,omitempty"`
}

type claims struct {
	Payload
	jwt.RegisteredClaims
}

// Codec signs and verifies compact HS256 tokens.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Generate produces a signed token embedding payload, valid for ttl.
func (c *Codec) Generate(payload Payload, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return t.SignedString([]byte(secretKey))
}

// Verify checks the signature and expiry and returns the embedded payload.
func (c *Codec) Verify(tokenString, secretKey string) (Payload, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return Payload{}, fmt.Errorf("invalid token")
	}

	cl, ok := parsed.Claims.(*claims)
	if !ok {
		return Payload{}, fmt.Errorf("invalid token claims")
	}
	return cl.Payload, nil
}

// ExtractFromHeader pulls the token out of a "Bearer <token>" authorization
// header value. A missing or malformed header yields an empty string, not an
// error.
func (c *Codec) ExtractFromHeader(headerValue string) string {
	parts := strings.Split(headerValue, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
