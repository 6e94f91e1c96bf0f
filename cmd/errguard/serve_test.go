package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuldan/errorhandler/pkg/config"
	pkghttp "github.com/shuldan/errorhandler/pkg/http"
	"github.com/shuldan/errorhandler/pkg/process"
	"github.com/shuldan/errorhandler/pkg/severity"
)

func newTestService(t *testing.T, values map[string]any) (*service, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	rt := process.New(process.WithWriter(out), process.WithExit(func(int) {}))
	svc, err := newService(config.NewMapConfig(values), out, rt)
	require.NoError(t, err)
	return svc, out
}

func get(svc *service, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewService_Defaults(t *testing.T) {
	svc, _ := newTestService(t, nil)

	assert.Equal(t, ":8080", svc.addr)
	assert.Equal(t, severity.All, svc.handler.LoggedErrorTypes())
}

func TestNewService_FromConfig(t *testing.T) {
	svc, _ := newTestService(t, map[string]any{
		"http": map[string]any{"addr": "127.0.0.1:9999"},
		"error_handler": map[string]any{
			"also_log": []any{"warning", "user_warning"},
		},
	})

	assert.Equal(t, "127.0.0.1:9999", svc.addr)
	assert.Equal(t, severity.Mask(severity.Warning|severity.UserWarning), svc.handler.LoggedErrorTypes())
}

func TestNewService_InvalidConfig(t *testing.T) {
	rt := process.New(process.WithExit(func(int) {}))

	_, err := newService(config.NewMapConfig(map[string]any{
		"logger": map[string]any{"format": "xml"},
	}), &bytes.Buffer{}, rt)
	assert.Error(t, err)

	_, err = newService(config.NewMapConfig(map[string]any{
		"error_handler": map[string]any{"also_log": []any{"loud"}},
	}), &bytes.Buffer{}, rt)
	assert.Error(t, err)
}

func TestRouter_Healthz(t *testing.T) {
	svc, _ := newTestService(t, nil)

	rec := get(svc, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(pkghttp.RequestIDHeader))
}

func TestRouter_Failures(t *testing.T) {
	svc, out := newTestService(t, map[string]any{
		"logger": map[string]any{"format": "json"},
	})

	for _, path := range []string{"/panic", "/fail"} {
		rec := get(svc, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Equal(t, "Unexpected error", rec.Body.String(), path)
	}

	rec := get(svc, "/warn")
	assert.Equal(t, http.StatusOK, rec.Code)

	logs := out.String()
	assert.Contains(t, logs, "Uncaught errorhandler.PanicError: panic requested")
	assert.Contains(t, logs, "Uncaught errors.Error")
	assert.Contains(t, logs, "Warning: warning requested at ")

	metricsOut := get(svc, "/metrics").Body.String()
	assert.Contains(t, metricsOut, `errorhandler_log_records_total{level="error"} 2`)
	assert.Contains(t, metricsOut, `errorhandler_log_records_total{level="warning"} 1`)
}

func TestOverrideLogLevel(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"logger": map[string]any{"level": "info", "format": "json"},
	})

	overridden := overrideLogLevel(cfg, "debug")

	assert.Equal(t, "debug", overridden.GetString("logger.level"))
	assert.Equal(t, "json", overridden.GetString("logger.format"))
	assert.Equal(t, "info", cfg.GetString("logger.level"))
}

func TestRunGuarded_ShutdownRunsOnReturn(t *testing.T) {
	tests := []struct {
		name  string
		root  *rootFlags
		flags *serveFlags
		exit  int
	}{
		{
			name:  "server cannot listen",
			root:  &rootFlags{},
			flags: &serveFlags{addr: "127.0.0.1:-1"},
			exit:  exitFailure,
		},
		{
			name:  "bad log level",
			root:  &rootFlags{logLevel: "loud"},
			flags: &serveFlags{},
			exit:  exitConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			rt := process.New(process.WithWriter(out), process.WithExit(func(int) {}))
			shutdowns := 0
			rt.RegisterShutdownFunction(func() { shutdowns++ })

			err := runGuarded(context.Background(), out, tt.root, tt.flags, rt)

			require.Error(t, err)
			assert.Equal(t, tt.exit, exitCode(err))
			assert.Equal(t, 1, shutdowns)
		})
	}
}
