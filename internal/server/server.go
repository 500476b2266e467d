// Package server exposes one Session over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server routes every request to the same Session.
type Server struct {
	session app.Facade
	logger  zerolog.Logger

	*echo.Echo
}

// New builds the router over session.
func New(session app.Facade, logger zerolog.Logger) *Server {
	s := &Server{
		session: session,
		logger:  logger,
		Echo:    echo.New(),
	}
	s.HideBanner = true
	s.HidePort = true
	s.HTTPErrorHandler = s.handleError

	s.Use(middleware.Recover())
	s.Use(requestLogger(logger))
	s.registerRoutes()

	return s
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Serve matches the cli serve hook: it builds a Server and runs it.
func Serve(logger zerolog.Logger) func(ctx context.Context, session app.Facade, addr string) error {
	return func(ctx context.Context, session app.Facade, addr string) error {
		return New(session, logger).Run(ctx, addr)
	}
}
