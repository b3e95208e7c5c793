// Package httpapi exposes the paste service over HTTP and hosts the
// per-request authentication pipeline that turns bearer tokens into acting
// identities.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/pastekeeper/internal/logging"
	"github.com/dmitrijs2005/pastekeeper/internal/server/config"
	"github.com/dmitrijs2005/pastekeeper/internal/server/storage"
	"github.com/dmitrijs2005/pastekeeper/internal/server/token"
	"github.com/dmitrijs2005/pastekeeper/internal/server/users"
)

// Identity is the payload carried inside issued tokens.
type Identity struct {
	Username string `json:"username"`
}

// Server wires the token codec, credential store and paste store behind the
// HTTP surface.
type Server struct {
	address  string
	host     *url.URL
	idLength int
	codec    *token.Codec[Identity]
	users    *users.Service
	store    *storage.Store
	logger   logging.Logger
}

// NewServer constructs the HTTP server from validated configuration.
func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, st *storage.Store) (*Server, error) {
	codec, err := token.NewCodec[Identity](cfg.SecretKey, cfg.TokenValidityDuration)
	if err != nil {
		return nil, err
	}

	host, err := url.Parse(cfg.HostURL)
	if err != nil {
		return nil, err
	}

	return &Server{
		address:  cfg.EndpointAddr,
		host:     host,
		idLength: cfg.IDLength,
		codec:    codec,
		users:    us,
		store:    st,
		logger:   l.With("module", "http_server"),
	}, nil
}

// Handler returns the routed HTTP handler, wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHelp)
	mux.HandleFunc("POST /{$}", s.handleUpload)
	mux.HandleFunc("GET /{id}", s.handleRetrieve)
	mux.HandleFunc("DELETE /{id}", s.handleDelete)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /change-password", s.handleChangePassword)

	return s.withRequestLog(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
