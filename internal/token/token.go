// Package token issues and validates the service's bearer tokens.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "donation-intake"

// Claims carries the authenticated identity inside a signed token. Role is
// used by the request layer to guard admin routes; core operations never
// re-check it.
type Claims struct {
	Role string `json:"role"`
	Zone string `json:"zone,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and validates HS256 tokens.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// New creates a token service with the given signing key and token lifetime.
func New(signingKey string, ttl time.Duration) *Service {
	return &Service{signingKey: []byte(signingKey), ttl: ttl}
}

// Generate creates a signed token for the given user.
func (s *Service) Generate(userID int64, role, zone string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		Zone: zone,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Validate parses a token and returns its claims along with the numeric user id.
func (s *Service) Validate(tokenString string) (*Claims, int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, 0, fmt.Errorf("invalid token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid subject: %w", err)
	}
	return claims, userID, nil
}
