package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	userRoutes(app)
	taxonomyRoutes(app)
	assessmentRoutes(app)

	// Liveness probe.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
