package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	staff  string
	clerk  string
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *testEnv {
	return setupTestRouterWithLimiter(t, nil)
}

func setupTestRouterWithLimiter(t *testing.T, limiter *middleware.RateLimiter) *testEnv {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, testSecret, time.Hour)
	images := service.NewImageService(service.NewLocalStore(t.TempDir(), "/media"), 0)

	router := gin.New()
	SetupAPI(router, NewServices(db, auth, images, "KG"), nil, limiter)

	env := &testEnv{router: router, db: db, auth: auth}
	env.staff = tokenFor(t, db, auth, "admin@foodcourt.test", true)
	env.clerk = tokenFor(t, db, auth, "clerk@foodcourt.test", false)
	return env
}

func tokenFor(t *testing.T, db *gorm.DB, auth *service.AuthService, email string, staff bool) string {
	t.Helper()
	user := testhelpers.CreateUser(t, db, email, "secret-password", staff)
	token, err := auth.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

// do sends body as JSON, authenticating with token when it is not empty.
func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func fieldsOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "validation failed", body["error"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, w.Body.String())
	return fields
}

func TestHealthCheck(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestHealthCheckUnhealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(func(ctx context.Context) error { return errors.New("connection refused") }))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy"}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "Admin@FoodCourt.test",
			"password": "secret-password",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		token, _ := decode(t, w)["token"].(string)
		require.NotEmpty(t, token)

		me := env.do(http.MethodGet, "/api/v1/auth/me", nil, token)
		require.Equal(t, http.StatusOK, me.Code)
		body := decode(t, me)
		assert.Equal(t, "admin@foodcourt.test", body["email"])
		assert.Equal(t, true, body["is_staff"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "admin@foodcourt.test",
			"password": "nope",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid email or password", decode(t, w)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		fields := fieldsOf(t, env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{}, ""))
		assert.Equal(t, []any{"This field is required."}, fields["email"])
		assert.Equal(t, []any{"This field is required."}, fields["password"])
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestInvalidTokenRejectedOnPublicRoute(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(http.MethodGet, "/api/v1/categories", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid or expired token", decode(t, w)["error"])
}

func TestPermissionTable(t *testing.T) {
	env := setupTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/food"},
		{http.MethodPut, "/api/v1/food/1"},
		{http.MethodPatch, "/api/v1/food/1"},
		{http.MethodDelete, "/api/v1/food/1"},
		{http.MethodPost, "/api/v1/food-makeup"},
		{http.MethodPatch, "/api/v1/food-makeup/1"},
		{http.MethodPost, "/api/v1/food-weight"},
		{http.MethodDelete, "/api/v1/food-weight/1"},
		{http.MethodPut, "/api/v1/orders/1"},
		{http.MethodPatch, "/api/v1/orders/1"},
		{http.MethodDelete, "/api/v1/orders/1"},
		{http.MethodPut, "/api/v1/order-food/1"},
		{http.MethodDelete, "/api/v1/order-food/1"},
	}
	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, env.do(tc.method, tc.path, "{}", "").Code)
			assert.Equal(t, http.StatusForbidden, env.do(tc.method, tc.path, "{}", env.clerk).Code)
			staff := env.do(tc.method, tc.path, "{}", env.staff).Code
			assert.NotEqual(t, http.StatusUnauthorized, staff)
			assert.NotEqual(t, http.StatusForbidden, staff)
		})
	}

	open := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/food"},
		{http.MethodGet, "/api/v1/food-makeup"},
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodDelete, "/api/v1/categories/1"},
		{http.MethodPatch, "/api/v1/food-sizes/1"},
		{http.MethodPost, "/api/v1/orders"},
		{http.MethodPost, "/api/v1/order-food"},
	}
	for _, tc := range open {
		t.Run("anonymous "+tc.method+" "+tc.path, func(t *testing.T) {
			code := env.do(tc.method, tc.path, "{}", "").Code
			assert.NotEqual(t, http.StatusUnauthorized, code)
			assert.NotEqual(t, http.StatusForbidden, code)
		})
	}
}

func TestResourceCollections(t *testing.T) {
	env := setupTestRouter(t)

	for _, name := range []string{"categories", "food", "food-sizes", "food-makeup", "food-weight", "orders", "order-food"} {
		w := env.do(http.MethodGet, "/api/v1/"+name, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Contains(t, decode(t, w), "results", name)
	}

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/v1/foods", nil, "").Code)
}

func TestMalformedBody(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(http.MethodPost, "/api/v1/categories", `{"name":`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "malformed request body")
}

func TestNonNumericID(t *testing.T) {
	env := setupTestRouter(t)

	for _, path := range []string{"/api/v1/categories/abc", "/api/v1/food/0", "/api/v1/orders/-3"} {
		w := env.do(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
