package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned when a token's expiry has passed.
	ErrExpired = errors.New("token has expired")
	// ErrInvalid is returned for any other token failure.
	ErrInvalid = errors.New("invalid token")
)

// Claims carries the caller identity embedded in every access token.
type Claims struct {
	UserID uint64 `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies access tokens.
type Issuer struct {
	Secret []byte
	TTL    time.Duration
}

// NewIssuer creates an Issuer with the given signing secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// Issue creates a signed token carrying the user's id and email.
func (i *Issuer) Issue(userID uint64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.TTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.Secret)
}

// Verify parses and validates a token, returning its claims. Expired tokens
// are reported as ErrExpired so the caller can answer with a specific
// message; every other failure collapses to ErrInvalid.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, ErrInvalid
}
