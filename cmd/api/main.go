package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kamaukev/quiz_genie/ai"
	config "github.com/kamaukev/quiz_genie/configs"
	"github.com/kamaukev/quiz_genie/database"
	"github.com/kamaukev/quiz_genie/handlers"
	"github.com/kamaukev/quiz_genie/jobs"
	"github.com/kamaukev/quiz_genie/routes"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()

	aiCfg := ai.Config{
		APIKey: config.Config("GEMINI_API_KEY"),
		Model:  config.Config("GEMINI_MODEL"),
	}
	if aiCfg.Model == "" {
		aiCfg.Model = "gemini-1.5-flash-002"
	}
	aiClient, err := ai.NewClient(context.Background(), aiCfg)
	if err != nil {
		log.Fatalf("🔥 Failed to initialize AI client: %v", err)
	}
	defer aiClient.Close()
	handlers.InitQuizGenerator(aiClient)

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.CleanupStaleUploads)
	go c.Start()

	app := fiber.New(fiber.Config{
		AppName:      "Quiz Genie",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app)
	routes.QuizRoutes(app)
	routes.UserRoutes(app)
	routes.AdminRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
