// Package pasteid generates and validates paste identifiers.
//
// Identifiers are random strings over a 62-symbol alphabet (digits plus
// upper- and lowercase ASCII letters). The alphabet restriction is the sole
// defense against path traversal, so Validate must be applied to every
// identifier parsed from an external request before it reaches path
// resolution.
package pasteid

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Alphabet is the set of symbols identifiers are drawn from.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrInvalid reports an identifier containing characters outside Alphabet.
var ErrInvalid = errors.New("invalid paste id")

// maxUnbiased is the largest multiple of len(Alphabet) that fits in a byte.
// Random bytes at or above it are rejected to keep the draw uniform.
const maxUnbiased = 256 - 256%len(Alphabet)

// New returns a fresh identifier of the given length, each character an
// independent uniform draw from Alphabet. No uniqueness check against
// existing identifiers is performed: at realistic lengths the collision
// probability is negligible.
func New(length int) (string, error) {
	id := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(id) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buf {
			if len(id) == length {
				break
			}
			if int(b) >= maxUnbiased {
				continue
			}
			id = append(id, Alphabet[int(b)%len(Alphabet)])
		}
	}

	return string(id), nil
}

// Validate rejects identifiers that are empty or contain a character outside
// Alphabet.
func Validate(id string) error {
	if id == "" {
		return ErrInvalid
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return ErrInvalid
		}
	}
	return nil
}
