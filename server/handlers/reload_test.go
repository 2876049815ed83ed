package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mergington/activityserver/config"
)

type mockReloader struct {
	err error
}

func (m *mockReloader) Reload() error {
	return m.err
}

func TestReloadHandler_Success(t *testing.T) {
	handler := NewReloadHandler(slog.Default(), &mockReloader{})

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReloadHandler_Error(t *testing.T) {
	handler := NewReloadHandler(slog.Default(), &mockReloader{err: errors.New("config file not found")})

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "config file not found")
}

type mockConfigProvider struct {
	cfg *config.Config
}

func (m *mockConfigProvider) Config() *config.Config {
	return m.cfg
}

func TestConfigHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetDefaults()
	handler := NewConfigHandler(&mockConfigProvider{cfg: cfg})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "listener:")
	assert.Contains(t, w.Body.String(), "jobname: activityserver")
}
