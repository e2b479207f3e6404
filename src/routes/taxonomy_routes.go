package routes

import (
	"Backend-RODO-Panel/src/controllers"
	"Backend-RODO-Panel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// taxonomyRoutes - read-only questionnaire structure
func taxonomyRoutes(app *fiber.App) {
	chapters := app.Group("/chapters", middleware.AuthJWT)
	chapters.Get("/", controllers.GetChapters)
	chapters.Get("/:id/areas", controllers.GetChapterAreas)

	areas := app.Group("/areas", middleware.AuthJWT)
	areas.Get("/:id/requirements", controllers.GetAreaRequirements)
}
