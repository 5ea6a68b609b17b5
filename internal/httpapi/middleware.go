package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/logging"
)

// corsMiddleware sets the CORS headers on every response, echoing the
// request's Origin when present and falling back to the first configured
// origin otherwise. OPTIONS preflights short-circuit with an empty response.
//
// The stock gin-contrib/cors middleware omits headers on origin-less
// requests, while this API promises CORS headers on every response
// (including curl-style calls), so the few lines are written out here.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	fallback := "*"
	if len(allowedOrigins) > 0 {
		fallback = allowedOrigins[0]
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = fallback
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Requested-With,Origin,Accept")
		h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogger logs one line per handled request.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// recoveryMiddleware converts panics into the generic 500 error code. The
// panic detail is logged server-side only and never echoed to the client.
func recoveryMiddleware(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Error(c.Request.Context(), "panic while handling request",
			"error", fmt.Sprint(err),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})
	})
}

// bodyLimit caps the readable request body size.
func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
