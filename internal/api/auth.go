package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/service"
	"github.com/pageza/foodcourt/backend/internal/types"
)

// AuthHandler signs staff in
type AuthHandler struct {
	auth service.IAuthService
}

func NewAuthHandler(auth service.IAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuthenticated(), h.Me)
	}
}

// Login godoc
// @Summary Sign in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body types.LoginRequest true "Credentials"
// @Success 200 {object} types.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "user", err)
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		respondError(c, "user", err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("user_id", user.ID.String()).Msg("staff signed in")
	c.JSON(http.StatusOK, types.LoginResponse{Token: token})
}

// Me godoc
// @Summary Describe the signed in caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := middleware.Claims(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":  claims.UserID,
		"email":    claims.Email,
		"is_staff": claims.IsStaff,
	})
}
