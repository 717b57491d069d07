// Package middleware holds the gin middleware shared by every route group.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// quietPaths are probe endpoints that orchestrators poll every few seconds;
// logging each hit drowns out everything else.
var quietPaths = map[string]bool{
	"/health": true,
	"/ready":  true,
}

// RequestLogger logs one line per request with timing. The request id comes
// from the requestid middleware, which must run earlier in the chain.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if quietPaths[c.Request.URL.Path] {
			return
		}

		slog.Info("request",
			"request_id", requestid.Get(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}
