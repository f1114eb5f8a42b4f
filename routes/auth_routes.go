package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaukev/quiz_genie/handlers"
	"github.com/kamaukev/quiz_genie/middleware"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/signup", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/profile", middleware.Protected(), handlers.GetProfile)
}
