package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupMiddlewares memasang middleware global dasar
func SetupMiddlewares(app *fiber.App) {
	// panic di handler jadi 500, prosesnya sendiri harus tetap hidup
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] %s %s: %v\n%s", c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	}))
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
