// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/handler"
	"github.com/MKhiriev/go-ad-board/internal/logger"
)

type server struct {
	httpServer      *httpServer
	closers         []io.Closer
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once

	logger *logger.Logger
}

// NewServer builds the HTTP server. closers are closed in order after the
// server has shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:         closers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	if err := s.httpServer.listen(); err != nil {
		s.Shutdown()
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-serveErr:
		if err != nil {
			s.Shutdown()
			return err
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if s.httpServer != nil && s.httpServer.listener != nil {
			if err := s.httpServer.shutdown(ctx); err != nil {
				s.logger.Err(err).Msg("error shutting down HTTP server")
			}
		}

		for _, c := range s.closers {
			if err := c.Close(); err != nil {
				s.logger.Err(err).Msg("error releasing resource")
			}
		}
	})
}
