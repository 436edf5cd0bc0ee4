package server

import (
	"bytes"
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

	"github.com/pageza/foodcourt/backend/config"
	"github.com/pageza/foodcourt/backend/internal/api"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mediaDir := t.TempDir()
	cfg := &config.Config{
		Env:         config.Test,
		ServerHost:  "localhost",
		ServerPort:  "0",
		CORSOrigins: []string{"http://localhost:3000"},
		MediaDir:    mediaDir,
		MediaURL:    "/media",
	}

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, "test-secret", time.Hour)
	images := service.NewImageService(service.NewLocalStore(mediaDir, cfg.MediaURL), 0)
	svc := api.NewServices(db, auth, images, "KG")

	return New(cfg, zerolog.New(&bytes.Buffer{}), svc, nil, nil), mediaDir
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	s, _ := newTestServer(t)
	require.NotNil(t, s)
	assert.Equal(t, "localhost:0", s.http.Addr)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())

	w = serve(s, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(s, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDocument(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/orders/{id}"`)
	assert.Contains(t, w.Body.String(), `"basePath": "/api/v1"`)
}

func TestMediaServed(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "food_images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "food_images", "dish.jpg"), []byte("jpeg"), 0o644))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/media/food_images/dish.jpg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())
}
