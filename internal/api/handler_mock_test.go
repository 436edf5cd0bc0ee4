package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/foodcourt/backend/internal/mocks"
	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

func mockRouter(auth *mocks.MockAuthService, foods *mocks.MockFoodService, orders *mocks.MockOrderService, images *mocks.MockImageService) *gin.Engine {
	router := gin.New()
	SetupAPI(router, Services{Auth: auth, Foods: foods, Orders: orders, Images: images}, nil, nil)
	return router
}

func serveMock(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUnexpectedServiceErrorIsInternal(t *testing.T) {
	orders := new(mocks.MockOrderService)
	orders.On("Get", mock.Anything, uint(7)).Return(nil, errors.New("connection reset by peer"))
	router := mockRouter(new(mocks.MockAuthService), new(mocks.MockFoodService), orders, nil)

	w := serveMock(router, http.MethodGet, "/api/v1/orders/7", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	orders.AssertExpectations(t)
}

func TestProtectedDeleteIsConflict(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "staff-token").Return(&types.TokenClaims{UserID: uuid.New(), Email: "admin@foodcourt.test", IsStaff: true}, nil)
	foods := new(mocks.MockFoodService)
	foods.On("Delete", mock.Anything, uint(3)).Return(&service.ProtectedError{Resource: "food", ID: 3, ReferencedBy: "ordering food", Count: 2})
	router := mockRouter(auth, foods, new(mocks.MockOrderService), nil)

	w := serveMock(router, http.MethodDelete, "/api/v1/food/3", "", "staff-token")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"cannot delete food: it is referenced by 2 ordering food"}`, w.Body.String())
	foods.AssertExpectations(t)
}

func TestFoodPartialUpdatePassesOnlySentFields(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "staff-token").Return(&types.TokenClaims{UserID: uuid.New(), IsStaff: true}, nil)
	foods := new(mocks.MockFoodService)
	foods.On("Update", mock.Anything, uint(5), mock.MatchedBy(func(req types.PatchFoodRequest) bool {
		return req.Name != nil && *req.Name == "Quattro" && req.Image == nil && req.Category == nil && req.Description == nil
	})).Return(&models.Food{ID: 5, Name: "Quattro", CategoryID: 1}, nil)
	router := mockRouter(auth, foods, new(mocks.MockOrderService), nil)

	w := serveMock(router, http.MethodPatch, "/api/v1/food/5", `{"name":"Quattro"}`, "staff-token")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"category":1`)
	foods.AssertExpectations(t)
}

func TestFoodCreateImageFailure(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "staff-token").Return(&types.TokenClaims{UserID: uuid.New(), IsStaff: true}, nil)
	images := new(mocks.MockImageService)
	images.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))
	foods := new(mocks.MockFoodService)
	router := mockRouter(auth, foods, new(mocks.MockOrderService), images)

	body, contentType := multipartFood(t, map[string]any{"name": "Pizza", "description": "d", "category": 1}, pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/food", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer staff-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	images.AssertExpectations(t)
	foods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginWithMockedAuth(t *testing.T) {
	auth := new(mocks.MockAuthService)
	user := &models.User{ID: uuid.New(), Email: "admin@foodcourt.test", IsStaff: true}
	auth.On("Login", mock.Anything, "admin@foodcourt.test", "pw").Return("signed-token", user, nil)
	auth.On("Login", mock.Anything, "admin@foodcourt.test", "bad").Return("", nil, service.ErrInvalidCredentials)
	router := mockRouter(auth, new(mocks.MockFoodService), new(mocks.MockOrderService), nil)

	w := serveMock(router, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@foodcourt.test","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"signed-token"}`, w.Body.String())

	w = serveMock(router, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@foodcourt.test","password":"bad"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	auth.AssertExpectations(t)
}

func serveMultipart(t *testing.T, router *gin.Engine, method, path string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartFood(t, payload, pngBytes(t))
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer staff-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFoodInvalidPayloadSkipsUpload(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "staff-token").Return(&types.TokenClaims{UserID: uuid.New(), IsStaff: true}, nil)
	images := new(mocks.MockImageService)
	foods := new(mocks.MockFoodService)
	router := mockRouter(auth, foods, new(mocks.MockOrderService), images)

	w := serveMultipart(t, router, http.MethodPost, "/api/v1/food", map[string]any{"description": "no name", "category": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	foods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFoodRejectedWriteDiscardsImage(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "staff-token").Return(&types.TokenClaims{UserID: uuid.New(), IsStaff: true}, nil)
	images := new(mocks.MockImageService)
	images.On("Upload", mock.Anything, mock.Anything).Return("/media/food_images/new.jpg", nil)
	images.On("Discard", mock.Anything, "/media/food_images/new.jpg").Return(nil)
	foods := new(mocks.MockFoodService)
	foods.On("Create", mock.Anything, mock.MatchedBy(func(req types.CreateFoodRequest) bool {
		return req.Image == "/media/food_images/new.jpg"
	})).Return(nil, service.FieldError("category", `Invalid pk "9" - object does not exist.`))
	foods.On("Update", mock.Anything, uint(4), mock.Anything).Return(nil, service.ErrNotFound)
	router := mockRouter(auth, foods, new(mocks.MockOrderService), images)

	w := serveMultipart(t, router, http.MethodPost, "/api/v1/food", map[string]any{"name": "Pizza", "description": "d", "category": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serveMultipart(t, router, http.MethodPatch, "/api/v1/food/4", map[string]any{"name": "Calzone"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	images.AssertNumberOfCalls(t, "Discard", 2)
	foods.AssertExpectations(t)
}
