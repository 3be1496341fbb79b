package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/types"
)

// SupportedMajorVersion is the API major version this service speaks
const SupportedMajorVersion = "1"

// VersionMiddleware parses the X-Api-Version header and stores it in context.
// Requests for another major version are rejected.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimPrefix(strings.TrimSpace(c.Get("X-Api-Version", "1.0.0")), "v")

		// Support version aliases
		switch version {
		case "1", "1.0":
			version = "1.0.0"
		}

		major, _, _ := strings.Cut(version, ".")
		if major != SupportedMajorVersion {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "Unsupported API version " + version,
				Type:    types.TypeVersion,
			}
		}

		// Store version in context
		c.Locals("apiVersion", version)

		return c.Next()
	}
}
