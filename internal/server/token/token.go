package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// AuthHeaderName is the HTTP header carrying the bearer token.
const AuthHeaderName = "Authorization"

const bearerPrefix = "Bearer "

// Codec signs and verifies claims carrying a payload of type T. It holds no
// mutable state and is safe for concurrent use.
type Codec[T any] struct {
	secret   []byte
	validity time.Duration
}

// NewCodec derives a signing codec from the configured secret and validity
// window. An empty secret cannot seed the MAC and yields ErrKeyCreation;
// a non-positive validity yields ErrExpiryConfigMissing.
func NewCodec[T any](secretKey string, validity time.Duration) (*Codec[T], error) {
	if secretKey == "" {
		return nil, common.ErrKeyCreation
	}
	if validity <= 0 {
		return nil, common.ErrExpiryConfigMissing
	}
	return &Codec[T]{secret: []byte(secretKey), validity: validity}, nil
}

// Encode wraps data in a fresh claim and signs it with HS256, returning the
// opaque token string.
func (c *Codec[T]) Encode(data T) (string, error) {
	claim := NewClaim(data, c.validity)

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSigning, err)
	}

	return tokenString, nil
}

// Decode verifies the signature and expiry of tokenString and returns the
// embedded payload. An expired but otherwise valid token fails with
// ErrTokenExpired, never with a signature error; every other verification
// failure is reported uniformly as ErrInvalidToken.
func (c *Codec[T]) Decode(tokenString string) (T, error) {
	var zero T

	claim := &Claim[T]{}
	parsed, err := jwt.ParseWithClaims(tokenString, claim,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return zero, common.ErrTokenExpired
		}
		return zero, common.ErrInvalidToken
	}
	if !parsed.Valid {
		return zero, common.ErrInvalidToken
	}

	return claim.Verify()
}

// FromHeader extracts the raw token from an Authorization header value.
// A missing header fails with ErrNoAuthHeader; anything not starting with
// the literal "Bearer " prefix fails with ErrMalformedAuthHeader.
func FromHeader(headerValue string) (string, error) {
	if headerValue == "" {
		return "", common.ErrNoAuthHeader
	}
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", common.ErrMalformedAuthHeader
	}
	return headerValue[len(bearerPrefix):], nil
}

// FromRequest extracts the bearer token from the request's Authorization
// header. Exactly one header value is required.
func FromRequest(r *http.Request) (string, error) {
	values := r.Header.Values(AuthHeaderName)
	if len(values) == 0 {
		return "", common.ErrNoAuthHeader
	}
	if len(values) > 1 {
		return "", common.ErrMalformedAuthHeader
	}
	return FromHeader(values[0])
}
