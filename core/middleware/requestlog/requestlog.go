package requestlog

import (
	"errors"
	"time"

	"color-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs every request with its ray id.
func New(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusFromError(err)
			l.Error("Request error", zap.Error(err))
		}

		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// StatusFromError returns the HTTP status the error handler will answer with.
func StatusFromError(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
