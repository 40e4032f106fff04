package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roster-sync/core/logger"
)

// HeaderRayID is the header carrying the request id in and out.
const HeaderRayID = "X-Ray-ID"

// HeaderAPIKey is the header carrying the client's API key.
const HeaderAPIKey = "X-API-Key"

// RayID assigns each request a unique id, honoring one the caller already
// set so ids survive proxies.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRayID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderRayID, rid)
		return c.Next()
	}
}

// Auth enforces the configured API key. An empty configured key disables
// the check for local development.
func Auth(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderAPIKey) != apiKey {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
		}
		return c.Next()
	}
}

// RequestLogger emits one log line per request with method, path, status
// and duration.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		logger.WithRayID(log, c).Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
