package http

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_InvalidHandler(t *testing.T) {
	_, err := NewServer(":0", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidHandler)
}

func TestServer_StartStop(t *testing.T) {
	h, logger := newTestHandler()
	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("broken route")
	})

	server, err := NewServer("127.0.0.1:0", Middleware(h)(inner), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, server.Start(ctx))
	assert.ErrorIs(t, server.Start(ctx), ErrServerAlreadyRunning)

	resp, err := http.Get("http://" + server.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Unexpected error", string(body))

	require.NoError(t, server.Stop(ctx))
	require.NoError(t, server.Stop(ctx))
	assert.Contains(t, logger.messages(), "HTTP server started")
	assert.Contains(t, logger.messages(), "HTTP server stopped")
}
