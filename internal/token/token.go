// Package token issues and verifies the bearer tokens that bind a request
// to a claimed identity. Tokens are HS256 JWTs carrying a single id claim
// and no expiry.
package token

import (
	"errors"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	ID string `json:"id"`
	jwt.StandardClaims
}

// Service signs and verifies tokens with a fixed shared secret.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token embedding identity. The identity content is
// not validated here; that is the caller's concern.
func (s *Service) Issue(identity string) (string, error) {
	claims := &Claims{ID: identity}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks the signature and decodes the embedded identity. Malformed
// tokens, wrong signing methods and bad signatures all collapse into
// ErrInvalidToken; callers never learn which it was.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !tok.Valid {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
