// Package server initializes and runs the paste service: it wires the
// credential store, paste storage, and HTTP endpoint together and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/pastekeeper/internal/logging"
	"github.com/dmitrijs2005/pastekeeper/internal/server/config"
	"github.com/dmitrijs2005/pastekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/pastekeeper/internal/server/storage"
	"github.com/dmitrijs2005/pastekeeper/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	users  *users.Service
	store  *storage.Store
}

func NewApp(cfg *config.Config) (*App, error) {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	us := users.NewService(cfg.UploadDir)
	if err := us.Bootstrap(); err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &App{
		config: cfg,
		logger: logger,
		users:  us,
		store:  storage.NewStore(cfg.UploadDir),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := httpapi.NewServer(app.config, app.logger, app.users, app.store)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
