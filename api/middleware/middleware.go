package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recover turns handler panics into 500 responses and logs the value.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			slog.Error("Recovered from panic", "panic", e, "method", c.Method(), "path", c.Path())
		},
	})
}

// Cors allows the configured origins. An empty list allows any origin
// without credentials.
func Cors(origins []*string) fiber.Handler {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin == nil || strings.TrimSpace(*origin) == "" {
			continue
		}
		allowed = append(allowed, strings.TrimSpace(*origin))
	}

	if len(allowed) == 0 {
		return cors.New()
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowed, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Disposition, X-Certificate-Number",
		AllowCredentials: true,
	})
}
