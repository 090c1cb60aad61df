package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns every request an id and logs its outcome
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		startTime := time.Now()
		c.Next()

		attrs := []any{
			"request_id", requestID,
			"http_method", c.Request.Method,
			"http_path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"duration_ms", time.Since(startTime).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request failed", attrs...)
		case c.Writer.Status() >= 400:
			log.Warn("Request rejected", attrs...)
		default:
			log.Info("Request finished", attrs...)
		}
	}
}
