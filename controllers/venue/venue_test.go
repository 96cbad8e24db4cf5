package venue

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describeApp() *fiber.App {
	app := fiber.New()
	vc := NewVenueController(nil, nil)
	app.Post("/describe", vc.Describe)
	return app
}

func TestDescribeUnavailableWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	app := describeApp()

	req := httptest.NewRequest(fiber.MethodPost, "/describe",
		strings.NewReader(`{"name":"Luxury Banquet Hall","city":"Mumbai"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestDescribeRequiresName(t *testing.T) {
	app := describeApp()

	req := httptest.NewRequest(fiber.MethodPost, "/describe",
		strings.NewReader(`{"city":"Mumbai"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
