// Package client contains the HTTP API client the CLI uses to talk to a
// PasteKeeper server.
//
// Common failure conditions are exposed as sentinel errors matchable with
// errors.Is: ErrUnavailable when the server cannot be reached, ErrUnauthorized
// when a token is missing, invalid, or expired, and ErrNotFound for absent
// pastes. Server-reported errors carry the machine code from the API error
// envelope (see APIError).
package client

import (
	"context"
	"io"
)

type Client interface {
	// Register creates a new account.
	Register(ctx context.Context, username, password, confirmPassword string) error

	// Login verifies credentials and returns a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// ChangePassword updates the password of the account behind token.
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error

	// Upload stores the content and returns its retrieval URL. With an empty
	// token the paste lands in the anonymous namespace.
	Upload(ctx context.Context, content io.Reader, token string) (string, error)

	// Get fetches paste content by identifier, optionally owner-scoped.
	Get(ctx context.Context, id, owner string) ([]byte, error)

	// Delete removes a paste. With my=true the paste is deleted from the
	// token's user namespace; otherwise from the anonymous one.
	Delete(ctx context.Context, id string, my bool, token string) error
}
