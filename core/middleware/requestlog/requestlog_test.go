package requestlog

import (
	"errors"
	"net/http/httptest"
	"testing"

	"color-api/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	completed := logs.FilterMessage("Request completed").All()
	require.Len(t, completed, 1)
	fields := completed[0].ContextMap()
	assert.Equal(t, int64(fiber.StatusNoContent), fields["status"])
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, resp.Header.Get(rayid.HeaderName), fields["ray_id"])

	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Request error").Len())

	completed = logs.FilterMessage("Request completed").All()
	require.Len(t, completed, 2)
	assert.Equal(t, int64(fiber.StatusTeapot), completed[1].ContextMap()["status"])
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusFromError(fiber.ErrNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFromError(errors.New("boom")))
}
