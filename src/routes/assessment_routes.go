package routes

import (
	"Backend-RODO-Panel/src/controllers"
	"Backend-RODO-Panel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// assessmentRoutes - /api/assessments, all behind JWT with USER or ADMIN.
func assessmentRoutes(app *fiber.App) {
	assessments := app.Group("/api/assessments", middleware.AuthJWT, middleware.RequireRole("USER", "ADMIN"))

	assessments.Get("/template", controllers.GetAssessmentTemplate)
	assessments.Get("/", controllers.GetAssessments)
	assessments.Post("/", controllers.CreateAssessment)
	assessments.Get("/:id", controllers.GetAssessment)
	assessments.Put("/:id", controllers.UpdateAssessment)
	assessments.Delete("/:id", controllers.DeleteAssessment)
}
