package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// errorResponse is the JSON envelope for every error reply. Code is the
// stable machine-readable error kind; Message is safe to show to the user.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps an error to its HTTP status: client-input mistakes are 400,
// failed token verification is 401, everything else is an operator problem
// and reports 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrPasswordsDontMatch),
		errors.Is(err, common.ErrUserExists),
		errors.Is(err, common.ErrInvalidUsername),
		errors.Is(err, common.ErrIncorrectCredentials),
		errors.Is(err, common.ErrNoAuthHeader):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrMalformedAuthHeader),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor picks the user-facing message. Token verification failures are
// reported uniformly so the response never reveals why verification failed,
// and server-side failures never leak details.
func messageFor(err error) string {
	switch {
	case errors.Is(err, common.ErrPasswordsDontMatch):
		return "failed to register, passwords dont match"
	case errors.Is(err, common.ErrUserExists):
		return "failed to register, username already exists"
	case errors.Is(err, common.ErrInvalidUsername):
		return "username may only contain digits and latin letters"
	case errors.Is(err, common.ErrIncorrectCredentials):
		return "please provide correct credentials"
	case errors.Is(err, common.ErrNoAuthHeader):
		return "please provide credentials"
	case errors.Is(err, common.ErrMalformedAuthHeader),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, common.ErrRegistrationFailed):
		return "registration failed, if problem persists contact admins"
	default:
		return "please contact admins"
	}
}

// writeError renders err as the JSON error envelope. Server-side failures
// are logged with their full cause before the sanitized reply goes out.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	}
	writeJSON(w, status, errorResponse{Error: messageFor(err), Code: common.Code(err)})
}

// writeBadRequest reports an unreadable or invalid request body.
func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "BadRequest"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
