package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/dmitrijs2005/pastekeeper/internal/server/pasteid"
	"github.com/dmitrijs2005/pastekeeper/internal/server/users"
)

const helpText = `USAGE

  POST /
      accepts raw data in the body of the request and responds with a URL of
      a page containing the body's content; with a bearer token the paste is
      stored under the token's user

  GET /<id>?<owner>
      retrieves the content for the paste with id <id> (optionally for user
      <owner>)

  DELETE /<id>?<my>
      deletes the paste with id <id>; with my=true and a bearer token the
      paste is deleted from the token's user namespace

  POST /register
      register a user: {"username", "password", "confirm_password"}

  POST /login
      login: {"username", "password"}; responds with a bearer token
      (after login pastes can not be deleted without login)

  POST /change-password
      change password (bearer token required):
      {"old_password", "new_password"}
`

type registerForm struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type passwordChangeForm struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, helpText)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	user, authenticated, err := s.optionalIdentity(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	owner := ""
	if authenticated {
		owner = user.Username
	}

	id, err := pasteid.New(s.idLength)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Save(id, owner, r.Body); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, s.pasteURL(id, owner))
}

// pasteURL builds the retrieval URL for a stored paste against the
// configured public host.
func (s *Server) pasteURL(id, owner string) string {
	u := *s.host
	u.Path = "/" + id
	if owner != "" {
		q := url.Values{}
		q.Set("owner", owner)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// ownerParam extracts and validates the optional owner query parameter.
// Alphabet validation here is the traversal defense; an owner that fails it
// is treated the same as a paste that does not exist.
func ownerParam(r *http.Request) (string, bool) {
	owner := r.URL.Query().Get("owner")
	if owner != "" && !users.ValidUsername(owner) {
		return "", false
	}
	return owner, true
}

func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := pasteid.Validate(id); err != nil {
		http.NotFound(w, r)
		return
	}

	owner, ok := ownerParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := s.store.Open(id, owner)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		s.writeError(w, r, err)
		return
	}
	defer f.Close()

	_, _ = io.Copy(w, f)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := pasteid.Validate(id); err != nil {
		http.NotFound(w, r)
		return
	}

	// Without my=true the delete targets the anonymous namespace and any
	// presented token is ignored. With my=true a valid identity is required.
	owner := ""
	if r.URL.Query().Get("my") == "true" {
		user, err := s.identityFromRequest(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		owner = user.Username
	}

	if err := s.store.Delete(id, owner); err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeBadRequest(w)
		return
	}

	if err := s.users.Register(form.Username, form.Password, form.ConfirmPassword); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeBadRequest(w)
		return
	}

	user, err := s.users.Login(form.Username, form.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tok, err := s.codec.Encode(Identity{Username: user.Username})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: tok})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := s.identityFromRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var form passwordChangeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeBadRequest(w)
		return
	}

	if _, err := s.users.ChangePassword(user, form.OldPassword, form.NewPassword); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
