// Package auth issues and verifies the signed identity tokens used by the API.
// Token validity is self-contained: a valid signature plus an unexpired exp
// claim is all a request needs, so verification never touches storage.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

var (
	ErrMalformedToken   = errors.New("auth: malformed token")
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrSigningFailure   = errors.New("auth: token signing failed")
)

// Claims is the identity assertion embedded in every issued token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies identity tokens with a single shared secret.
// The secret is fixed at construction and never mutated, so a Codec is safe
// for concurrent use across requests.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return NewCodecWithClock(secret, time.Now)
}

// NewCodecWithClock builds a Codec with an explicit time source. Production
// code uses NewCodec; tests use this to issue tokens in the past.
func NewCodecWithClock(secret string, now func() time.Time) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    now,
	}
}

// Encode issues a signed token for the given identity, valid for 24 hours.
func (c *Codec) Encode(userID int64, email string) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Join(ErrSigningFailure, err)
	}
	return signed, nil
}

// Decode verifies the token's signature and expiry and returns its claims.
// Expiry is checked even when the signature is valid.
func (c *Codec) Decode(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil && parsed.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSignature
	default:
		return Claims{}, ErrMalformedToken
	}
}
