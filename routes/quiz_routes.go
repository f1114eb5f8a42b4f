package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaukev/quiz_genie/handlers"
	"github.com/kamaukev/quiz_genie/middleware"
)

func QuizRoutes(app *fiber.App) {
	quiz := app.Group("/quiz")

	quiz.Post("/generate", middleware.Protected(), handlers.GenerateQuiz)
	quiz.Post("/generate-document", middleware.Protected(), handlers.GenerateQuizFromDocument)
	quiz.Post("/create", middleware.Protected(), handlers.CreateQuiz)
	quiz.Post("/submit", middleware.Protected(), handlers.SubmitQuiz)

	quiz.Get("/all", handlers.GetAllQuizzes)
	quiz.Get("/:id", handlers.GetQuiz)
}
