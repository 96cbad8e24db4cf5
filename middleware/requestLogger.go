package middleware

import (
	"strings"
	"time"

	"venue-booking/logger"
	"venue-booking/types"

	"github.com/gofiber/fiber/v2"
)

// sensitiveSuffixes are request paths whose bodies carry card data or
// plaintext passwords and must never reach the log table.
var sensitiveSuffixes = []string{"/payment", "/register", "/login"}

// redactRequestBody blanks request bodies for credential and card routes.
func redactRequestBody(path, body string) string {
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(path, suffix) {
			return "[redacted]"
		}
	}
	return body
}

// RequestLogger pushes one LogEntry per API request into the async logger
// after the handler chain completes.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     redactRequestBody(c.Path(), string(c.Body())),
			ResponseBody:    string(c.Response().Body()),
			RequestHeaders:  string(c.Request().Header.Header()),
			ResponseHeaders: string(c.Response().Header.Header()),
			StatusCode:      c.Response().StatusCode(),
			CreatedAt:       time.Now(),
		})

		return err
	}
}
