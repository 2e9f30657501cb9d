package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goto/approvals/pkg/audit"
	"github.com/goto/approvals/pkg/log"
)

type authenticatedUserEmailContextKey struct{}

const (
	logActorKey    = "actor"
	logHTTPPathKey = "http_path"
)

// headerAuth trusts the upstream gateway to put the caller's identity in headerKey
func headerAuth(headerKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userEmail := c.GetHeader(headerKey); userEmail != "" {
			ctx := context.WithValue(c.Request.Context(), authenticatedUserEmailContextKey{}, userEmail)
			ctx = audit.WithActor(ctx, userEmail)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func enrichLogFields() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := map[string]interface{}{
			logHTTPPathKey: c.FullPath(),
		}
		if userEmail, ok := c.Request.Context().Value(authenticatedUserEmailContextKey{}).(string); ok {
			fields[logActorKey] = userEmail
		}

		if ctx, err := log.WithMetadata(c.Request.Context(), fields); err == nil {
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func requestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		if c.Writer.Status() >= 500 {
			logger.Error(c.Request.Context(), "request failed", args...)
			return
		}
		logger.Debug(c.Request.Context(), "request served", args...)
	}
}
