package middleware_test

import (
	"net/http/httptest"
	"testing"

	"roster-sync/core/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	for _, h := range handlers {
		app.Use(h)
	}
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	app := newApp(middleware.RayID())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRayID))
}

func TestRayID_Preserved(t *testing.T) {
	app := newApp(middleware.RayID())

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(middleware.HeaderRayID, "ray-123")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, "ray-123", resp.Header.Get(middleware.HeaderRayID))
}

func TestAuth(t *testing.T) {
	app := newApp(middleware.Auth("secret"))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(middleware.HeaderAPIKey, "secret")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuth_DisabledWithoutKey(t *testing.T) {
	app := newApp(middleware.Auth(""))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	app := newApp(middleware.RayID(), middleware.RequestLogger(zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
