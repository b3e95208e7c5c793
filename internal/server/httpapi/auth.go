package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
	"github.com/dmitrijs2005/pastekeeper/internal/server/token"
	"github.com/dmitrijs2005/pastekeeper/internal/server/users"
)

// identityFromRequest runs the per-request authentication pipeline:
// header parse → signature verification → expiry check → account resolution.
// Any stage failure short-circuits with its own error; the final stage reads
// the credential record behind the claimed username, so a token referencing
// a broken account surfaces as an internal error, not a bad login.
func (s *Server) identityFromRequest(r *http.Request) (users.User, error) {
	raw, err := token.FromRequest(r)
	if err != nil {
		return users.User{}, err
	}

	identity, err := s.codec.Decode(raw)
	if err != nil {
		return users.User{}, err
	}

	return s.users.Get(identity.Username)
}

// optionalIdentity resolves the acting identity for routes that accept
// anonymous requests. A request with no Authorization header proceeds as
// unauthenticated; a header that is present but malformed, forged, or
// expired is still an error.
func (s *Server) optionalIdentity(r *http.Request) (users.User, bool, error) {
	user, err := s.identityFromRequest(r)
	if errors.Is(err, common.ErrNoAuthHeader) {
		return users.User{}, false, nil
	}
	if err != nil {
		return users.User{}, false, err
	}
	return user, true, nil
}
