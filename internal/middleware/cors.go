package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS header values sent on every response.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type"
	MaxAge       = "86400"
)

// CORS opens the API to any origin.
//
// Behavior:
//   - Sets Access-Control-Allow-{Origin,Methods,Headers} on every response.
//   - Answers OPTIONS under apiPrefix with 204 and Access-Control-Max-Age,
//     without running the rest of the chain.
//
// It must be registered with engine.Use so that it also runs for requests
// that match no route.
func CORS(apiPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", AllowOrigin)
		h.Set("Access-Control-Allow-Methods", AllowMethods)
		h.Set("Access-Control-Allow-Headers", AllowHeaders)

		if c.Request.Method == http.MethodOptions && strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			h.Set("Access-Control-Max-Age", MaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// NoStore marks every response as uncacheable.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store")
		c.Next()
	}
}
