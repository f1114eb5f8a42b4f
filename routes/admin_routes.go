package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaukev/quiz_genie/handlers"
	"github.com/kamaukev/quiz_genie/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/logins", handlers.GetLoginStats)
	admin.Get("/quizzes", handlers.GetQuizStats)
	admin.Get("/login-trend", handlers.GetLoginTrend)
	admin.Get("/quiz-trend", handlers.GetQuizTrend)
	admin.Get("/user-stats", handlers.GetUserStats)
	admin.Get("/dashboard", handlers.GetDashboard)
}
