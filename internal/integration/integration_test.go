package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/foodcourt/backend/internal/api"
	"github.com/pageza/foodcourt/backend/internal/database"
	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/server"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/testhelpers"
)

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// TestOrderFlowOnPostgres drives the whole stack against migrated PostgreSQL
// and Redis: staff builds the menu, a customer orders, staff delivers it.
func TestOrderFlowOnPostgres(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testhelpers.StartPostgres(t)
	redisAddr := testhelpers.StartRedis(t)
	cfg.MediaDir = t.TempDir()
	cfg.MediaURL = "/media"
	cfg.JWTSecret = "integration-secret"

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.RunMigrations(db, cfg))

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = rdb.Close() })

	auth := service.NewAuthService(db, cfg.JWTSecret, time.Hour)
	images := service.NewImageService(service.NewLocalStore(cfg.MediaDir, cfg.MediaURL), 0)
	srv := server.New(cfg, zerolog.Nop(), api.NewServices(db, auth, images, "KG"), nil, middleware.NewOrderRateLimiter(rdb, 100))

	_, err = auth.EnsureStaff(context.Background(), "Admin", "admin@foodcourt.test", "correct-horse")
	require.NoError(t, err)

	anon := &client{t: t, handler: srv.Handler()}
	code, login := anon.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@foodcourt.test", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, code)
	staff := &client{t: t, handler: srv.Handler(), token: login["token"].(string)}

	code, category := staff.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, code)

	code, food := staff.do(http.MethodPost, "/api/v1/food", map[string]any{
		"name":        "Margherita",
		"image":       "food_images/margherita.jpg",
		"description": "Tomato and mozzarella",
		"category":    category["id"],
		"sizes":       []map[string]any{{"name": "small", "price": "9.99"}, {"name": "large", "price": "14.50"}},
		"weight":      []map[string]any{{"value": "450"}},
	})
	require.Equal(t, http.StatusCreated, code, food)
	sizes := food["sizes"].([]any)
	small := sizes[0].(map[string]any)["id"]
	large := sizes[1].(map[string]any)["id"]

	code, order := anon.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"name":    "Aida",
		"email":   "aida@example.com",
		"phone":   "0555 123 456",
		"address": "Manas avenue 1",
		"home":    "5",
		"ordering_food": []map[string]any{{
			"food":           food["id"],
			"sizes_for_sale": []map[string]any{{"size": small, "quantity": 2}, {"size": large}},
		}},
	})
	require.Equal(t, http.StatusCreated, code, order)
	assert.Equal(t, 34.48, order["total_price"])
	assert.Equal(t, "+996555123456", order["phone"])
	orderPath := fmt.Sprintf("/api/v1/orders/%v", order["id"])

	code, _ = anon.do(http.MethodPatch, orderPath, map[string]string{"status": "on_delivery"})
	assert.Equal(t, http.StatusUnauthorized, code)

	for _, status := range []string{"on_delivery", "delivered"} {
		code, updated := staff.do(http.MethodPatch, orderPath, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, code, updated)
		assert.Equal(t, status, updated["status"])
	}

	code, conflict := staff.do(http.MethodDelete, fmt.Sprintf("/api/v1/food/%v", food["id"]), nil)
	assert.Equal(t, http.StatusConflict, code, conflict)

	code, page := anon.do(http.MethodGet, "/api/v1/orders?status=delivered&search=aida", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, page["count"])

	code, _ = staff.do(http.MethodDelete, orderPath, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = staff.do(http.MethodDelete, fmt.Sprintf("/api/v1/food/%v", food["id"]), nil)
	assert.Equal(t, http.StatusNoContent, code)
}
