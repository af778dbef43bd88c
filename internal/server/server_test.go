package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/egresados/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePinger struct {
	err      error
	deadline bool
}

func (f *fakePinger) Ping(ctx context.Context) error {
	_, f.deadline = ctx.Deadline()
	return f.err
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestServeUploadsOnlyExposesCategories(t *testing.T) {
	root := t.TempDir()
	router := gin.New()
	require.NoError(t, serveUploads(router, root, zerolog.Nop()))

	for _, dir := range []string{"certificates", "profile_photos", "news"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "certificates", "diploma.pdf"), []byte("%PDF"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("x"), 0o600))

	w := get(router, "/uploads/certificates/diploma.pdf")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(router, "/uploads/secret.txt").Code)
}

func TestReadiness(t *testing.T) {
	healthy := &fakePinger{}
	router := gin.New()
	router.GET("/ready", readiness(healthy, time.Second))

	w := get(router, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	assert.True(t, healthy.deadline)

	down := gin.New()
	down.GET("/ready", readiness(&fakePinger{err: errors.New("connection refused")}, time.Second))

	w = get(down, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestNewHTTPServerUsesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = "9090"
	cfg.Server.ReadTimeout = "5s"
	cfg.Server.IdleTimeout = "1m"
	cfg.Reports.RenderTimeout = "45s"

	srv := newHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)
	assert.Equal(t, 55*time.Second, srv.WriteTimeout)
}

func TestShutdownWithoutListener(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.ShutdownTimeout = "1s"
	s := &Server{config: cfg, logger: zerolog.Nop()}

	assert.NoError(t, s.Shutdown(context.Background()))
}
