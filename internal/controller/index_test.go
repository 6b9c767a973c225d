package controller_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/SeakMengs/PdfImage/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0644))

	_, r := newTestApp(t, func(cfg *config.Config) { cfg.StaticDir = dir })

	tests := []struct {
		name   string
		method string
		path   string
		code   int
		body   string
	}{
		{"Static file", http.MethodGet, "/assets/app.js", http.StatusOK, "console.log(1)"},
		{"Root serves index", http.MethodGet, "/", http.StatusOK, "<html>app</html>"},
		{"Client route serves index", http.MethodGet, "/upload/history", http.StatusOK, "<html>app</html>"},
		{"Api route is not the app", http.MethodGet, "/api/unknown", http.StatusNotFound, `{"error":"Not found"}`},
		{"Post is not served", http.MethodPost, "/upload", http.StatusNotFound, `{"error":"Not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestStaticFallbackTraversal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0644))
	_, r := newTestApp(t, func(cfg *config.Config) { cfg.StaticDir = dir })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))

	assert.NotContains(t, rec.Body.String(), "root:")
}

func TestStaticFallbackWithoutBundle(t *testing.T) {
	_, r := newTestApp(t, func(cfg *config.Config) { cfg.StaticDir = filepath.Join(t.TempDir(), "missing") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
