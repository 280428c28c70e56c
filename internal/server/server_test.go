// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/handler"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/workers"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	storages := &store.Storages{BlacklistRepository: mock.NewMockBlacklistRepository(gomock.NewController(t))}
	ws := workers.NewWorkers(storages, config.Workers{BlacklistPruneInterval: time.Hour}, clock.Fake(time.Now()), logger.Nop())

	srv, err := NewServer(handlers, ws, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/no/such/path")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := http.Get("http://" + addr + "/v1/version")
	assert.Error(t, err)
}

func TestServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t, config.Server{HTTPAddress: ln.Addr().String()})

	err = srv.run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
