// Package common defines shared constants and sentinel errors used across
// client and server layers of PasteKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Credential-store errors (safe to show to the user).
	ErrPasswordsDontMatch   = errors.New("passwords dont match")
	ErrUserExists           = errors.New("username already exists")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrInvalidUsername      = errors.New("invalid username")

	// Auth header errors.
	ErrNoAuthHeader        = errors.New("no authorization header")
	ErrMalformedAuthHeader = errors.New("malformed authorization header")

	// Token lifecycle errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Operator/configuration errors. These indicate misconfiguration or a
	// storage failure, never client misuse.
	ErrSecretNotFound      = errors.New("jwt secret not found")
	ErrExpiryConfigMissing = errors.New("jwt expiry time not found")
	ErrExpiryConfigInvalid = errors.New("jwt expiry time not valid")
	ErrKeyCreation         = errors.New("signing key creation failed")
	ErrSigning             = errors.New("token signing failed")
	ErrRegistrationFailed  = errors.New("registration failed")

	ErrInternal = errors.New("internal error")
)

// codes maps sentinel errors to the stable machine-readable codes exposed in
// API error responses. The strings are part of the wire contract and must not
// change between releases.
var codes = map[error]string{
	ErrPasswordsDontMatch:   "PasswordsDontMatch",
	ErrUserExists:           "UserExists",
	ErrIncorrectCredentials: "IncorrectCredentials",
	ErrInvalidUsername:      "InvalidUsername",
	ErrNoAuthHeader:         "NoAuthHeader",
	ErrMalformedAuthHeader:  "MalformedAuthHeader",
	ErrInvalidToken:         "JwtError",
	ErrTokenExpired:         "TokenExpired",
	ErrSecretNotFound:       "SecretNotFound",
	ErrExpiryConfigMissing:  "JwtExpiryTimeNotFound",
	ErrExpiryConfigInvalid:  "JwtExpiryNotValid",
	ErrKeyCreation:          "KeyCreationError",
	ErrSigning:              "JwtError",
	ErrRegistrationFailed:   "RegistrationFailed",
}

// Code returns the machine-readable code for err, matching through wrapped
// errors. Unrecognized errors report "InternalError".
func Code(err error) string {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "InternalError"
}
