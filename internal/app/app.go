package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jungguji/algo-rewind/internal/config"
	"github.com/jungguji/algo-rewind/internal/service/problem"
	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
	"github.com/jungguji/algo-rewind/internal/transport/middleware"
	"github.com/jungguji/algo-rewind/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, initializes the
// logger, wires the problem API and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return Serve(ctx, ln, NewServer(cfg, logger, time.Now), cfg.Server.ShutdownTimeout, logger)
}

// NewServer builds the HTTP server with every handler and middleware wired.
func NewServer(cfg *config.Config, logger *slog.Logger, clock func() time.Time) *http.Server {
	problems := problem.NewService(logger, problem.NewIDGenerator(clock), clock)
	api := jsonapi.New(problems)

	mw := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	handler := rest.NewRouter(
		rest.NewProblemHandler(api, clock, cfg.Server.MaxBodyBytes, logger),
		rest.NewHealthHandler(Version, clock),
		mw,
	)

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Serve runs srv on ln until ctx is done, then shuts it down within
// shutdownTimeout. A clean shutdown returns nil.
func Serve(ctx context.Context, ln net.Listener, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
