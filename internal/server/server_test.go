// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig(address string) config.Server {
	return config.Server{
		HTTPAddress:     address,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(okHandler(), testServerConfig(""), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, testServerConfig("127.0.0.1:0"), logger.Nop())
	assert.ErrorIs(t, err, errNoHandlerProvided)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	srv, err := NewServer(okHandler(), testServerConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.RunServer(ctx)
	}()

	httpSrv := srv.(*server).httpServer
	require.Eventually(t, func() bool { return httpSrv.Addr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + httpSrv.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	srv, err := NewServer(okHandler(), testServerConfig(taken.Addr().String()), logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.ErrorContains(t, err, "HTTP server Listen")
}

func TestRunServer_ShutdownTimeoutBoundsHangingRequest(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	hanging := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})

	cfg := testServerConfig("127.0.0.1:0")
	cfg.ShutdownTimeout = 100 * time.Millisecond

	srv, err := NewServer(hanging, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.RunServer(ctx)
	}()

	httpSrv := srv.(*server).httpServer
	require.Eventually(t, func() bool { return httpSrv.Addr() != nil }, 2*time.Second, 10*time.Millisecond)

	go func() {
		resp, err := http.Get("http://" + httpSrv.Addr().String() + "/")
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-started

	cancel()
	select {
	case err = <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown was not bounded by the shutdown timeout")
	}
}
