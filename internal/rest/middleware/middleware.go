package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	// HeaderUserID is set by the gateway after authenticating the caller.
	HeaderUserID = "X-User-ID"
	// ContextUserID is the gin context key handlers read the caller's id from.
	ContextUserID = "user_id"
)

// CORS will handle the CORS middleware
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", HeaderUserID},
		ExposeHeaders:   []string{"X-Cursor"},
		MaxAge:          12 * time.Hour,
	})
}

// SetRequestContextWithTimeout will set the request context with timeout for every incoming HTTP Request
func SetRequestContextWithTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Identity stores the caller's id when the gateway supplied one. Anonymous requests pass through.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(HeaderUserID); raw != "" {
			uid, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || uid <= 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + HeaderUserID})
				return
			}
			c.Set(ContextUserID, uid)
		}
		c.Next()
	}
}

// RequireUser rejects anonymous requests.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		c.Next()
	}
}

// UserID returns the caller's id, or 0 for an anonymous caller.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
