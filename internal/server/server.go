// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/handler"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
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

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves HTTP and runs the workers until ctx is done or one of them
// fails, then shuts the HTTP server down.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("stopping server")
		s.Shutdown()
		return nil
	})

	return g.Wait()
}
