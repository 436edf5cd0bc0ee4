package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery turns a panic into a logged 500 JSON response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	})
}

// NoRoute answers unknown paths with a JSON 404.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
}

// NoMethod answers a known path with an unsupported method.
func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: fmt.Sprintf("method %q not allowed", c.Request.Method)})
}
