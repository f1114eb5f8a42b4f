package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kamaukev/quiz_genie/database"
	"github.com/kamaukev/quiz_genie/models"
)

const loginHistoryDisplayLimit = 5

// ProgressAttempt is an attempt as shown on the progress page, with legacy
// records missing a type or topic backfilled with display defaults.
type ProgressAttempt struct {
	QuizType       string     `json:"quizType"`
	Topic          string     `json:"topic"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	Date           time.Time  `json:"date"`
	QuizID         *uuid.UUID `json:"quizId,omitempty"`
}

func progressAttempt(a models.QuizAttempt) ProgressAttempt {
	quizType := a.QuizType
	if quizType == "" {
		quizType = "topic"
	}
	topic := a.Topic
	if topic == "" {
		topic = "General"
	}
	return ProgressAttempt{
		QuizType:       quizType,
		Topic:          topic,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Date:           a.CreatedAt,
		QuizID:         a.QuizID,
	}
}

func GetUserProgress(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		userID = authenticatedUserID(c)
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	var attempts []models.QuizAttempt
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at desc").Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	quizAttempts := make([]ProgressAttempt, len(attempts))
	for i, a := range attempts {
		quizAttempts[i] = progressAttempt(a)
	}

	var logins []models.LoginEvent
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("login_time desc").Limit(loginHistoryDisplayLimit).Find(&logins).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	// Most-recent-5, presented oldest first like the stored sequence.
	loginActivity := make([]string, len(logins))
	for i, l := range logins {
		loginActivity[len(logins)-1-i] = l.LoginTime.UTC().Format(time.RFC3339)
	}

	return c.JSON(fiber.Map{
		"quizAttempts":  quizAttempts,
		"loginActivity": loginActivity,
	})
}

type AddQuizAttemptRequest struct {
	QuizType       string  `json:"quizType" validate:"required,oneof=topic document"`
	Topic          string  `json:"topic"`
	Score          int     `json:"score" validate:"gte=0"`
	TotalQuestions int     `json:"totalQuestions" validate:"required,gt=0"`
	QuizID         *string `json:"quizId"`
}

// AddQuizAttempt appends an attempt as reported by the client, without
// recomputing the score.
func AddQuizAttempt(c *fiber.Ctx) error {
	var req AddQuizAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Score > req.TotalQuestions {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Score cannot exceed total questions"})
	}

	userID, err := uuid.Parse(authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizType:       req.QuizType,
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	}
	if req.QuizID != nil {
		if quizID, err := uuid.Parse(*req.QuizID); err == nil {
			attempt.QuizID = &quizID
		}
	}

	if err := database.DB.Create(&attempt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save quiz attempt"})
	}

	var attempts []models.QuizAttempt
	if err := database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(attempts)
}

type RecordLoginRequest struct {
	LoginTime time.Time `json:"loginTime"`
}

func RecordLogin(c *fiber.Ctx) error {
	var req RecordLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.LoginTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "loginTime is required"})
	}

	userID, err := uuid.Parse(authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	event := models.LoginEvent{UserID: userID, LoginTime: req.LoginTime.UTC()}
	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to record login"})
	}
	return c.SendStatus(fiber.StatusOK)
}
