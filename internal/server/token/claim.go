// Package token implements the signed-claim bearer tokens used for
// authentication. A Claim wraps an arbitrary payload in a validity window;
// a Codec signs and verifies claims as opaque HS256 JWTs.
//
// The payload type is a compile-time parameter: a token minted for one
// payload shape can never be decoded as another without an explicit
// re-encode.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// Claim is a time-bounded wrapper around a payload of type T. The JSON
// field names form the wire contract: {"exp":unix,"iat":unix,"data":...}.
type Claim[T any] struct {
	ExpiresAt *jwt.NumericDate `json:"exp"`
	IssuedAt  *jwt.NumericDate `json:"iat"`
	Data      T                `json:"data"`
}

// NewClaim wraps data in a claim issued now and expiring after validity.
func NewClaim[T any](data T, validity time.Duration) Claim[T] {
	now := time.Now()
	return Claim[T]{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		Data:      data,
	}
}

// Verify returns the payload if the claim has not expired. It performs no
// other validation; the caller is expected to have checked the signature
// already.
func (c Claim[T]) Verify() (T, error) {
	var zero T
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return zero, common.ErrTokenExpired
	}
	return c.Data, nil
}

// The jwt.Claims implementation below lets jwt.ParseWithClaims run its
// standard expiry validation against our wire shape.

func (c Claim[T]) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c Claim[T]) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c Claim[T]) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claim[T]) GetIssuer() (string, error)                   { return "", nil }
func (c Claim[T]) GetSubject() (string, error)                  { return "", nil }
func (c Claim[T]) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
