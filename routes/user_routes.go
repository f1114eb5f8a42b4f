package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaukev/quiz_genie/handlers"
	"github.com/kamaukev/quiz_genie/middleware"
)

func UserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.Protected())

	users.Post("/attempts", handlers.AddQuizAttempt)
	users.Post("/record-login", handlers.RecordLogin)
	users.Get("/:userId/attempts", handlers.GetUserProgress)
}
