package routes

import (
	"Backend-RODO-Panel/src/controllers"
	"Backend-RODO-Panel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes - profile settings for the logged-in user
func userRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.AuthJWT)

	users.Get("/me", controllers.GetCurrentUser)
	users.Put("/me", controllers.UpdateCurrentUser)
	users.Put("/me/password", controllers.ChangePassword)
}
