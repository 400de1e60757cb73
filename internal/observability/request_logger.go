package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs each request with timing and feeds the request counters.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, duration)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}
		if reqID, ok := c.Locals(RequestIDKey).(string); ok && reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
		logger.Info("request handled", fields...)
		return err
	}
}

// RequestIDKey is the fiber locals key under which the request id is stored.
const RequestIDKey = "request_id"
