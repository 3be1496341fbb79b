package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/handlers"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/localnerve/routinesdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	cases := []struct {
		header string
		status int
		want   string
	}{
		{"", fiber.StatusOK, "1.0.0"},
		{"1", fiber.StatusOK, "1.0.0"},
		{"1.0", fiber.StatusOK, "1.0.0"},
		{"v1.2.3", fiber.StatusOK, "1.2.3"},
		{"2.0.0", fiber.StatusBadRequest, ""},
		{"garbage", fiber.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Api-Version", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, tc.status)

			if tc.status != fiber.StatusOK {
				var body utils.ErrorResponseStruct
				testutil.ParseJSON(t, resp, &body)
				assert.Equal(t, types.TypeVersion, body.Type)
				assert.False(t, body.Ok)
			}
		})
	}
}
