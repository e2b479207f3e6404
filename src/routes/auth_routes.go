package routes

import (
	"Backend-RODO-Panel/src/controllers"
	"Backend-RODO-Panel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes - register/login/refresh/logout
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
