package convert

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop())

	assert.Equal(t, "convert", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/convert/hex-to-rgb?hex=FFF", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
