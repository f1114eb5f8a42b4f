package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kamaukev/quiz_genie/ai"
	"github.com/kamaukev/quiz_genie/database"
	"github.com/kamaukev/quiz_genie/extract"
	"github.com/kamaukev/quiz_genie/models"
	"gorm.io/datatypes"
)

const (
	secondsPerQuestion   = 30
	defaultQuestionCount = 5
	maxQuestionCount     = 20
	uploadDir            = "uploads"
)

// QuizGenerator is the external model boundary. The concrete implementation
// lives in the ai package; tests substitute a fake.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, content string, count int, mode ai.Mode) (ai.GeneratedQuiz, error)
}

var generator QuizGenerator

func InitQuizGenerator(g QuizGenerator) {
	generator = g
}

// clampQuestionCount maps an absent or non-positive count to the default and
// caps runaway requests at the maximum.
func clampQuestionCount(n int) int {
	if n < 1 {
		return defaultQuestionCount
	}
	if n > maxQuestionCount {
		return maxQuestionCount
	}
	return n
}

func timeLimitFor(count int) int {
	return count * secondsPerQuestion
}

type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions"`
}

func GenerateQuiz(c *fiber.Ctx) error {
	var req GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if strings.TrimSpace(req.Topic) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Topic is required"})
	}

	count := clampQuestionCount(req.NumQuestions)

	quizData, err := generator.GenerateQuiz(c.Context(), req.Topic, count, ai.ModeTopic)
	if err != nil {
		log.Printf("quiz generation failed for topic %q: %v", req.Topic, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate quiz"})
	}

	quiz, err := persistQuiz(quizData, count, authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz generated successfully!",
		"quiz":    quiz,
	})
}

func GenerateQuizFromDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	requested, _ := strconv.Atoi(c.FormValue("numQuestions"))
	count := clampQuestionCount(requested)

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	filename := fmt.Sprintf("file-%d%s", time.Now().UnixMilli(), filepath.Ext(fileHeader.Filename))
	filePath := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(fileHeader, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	text, err := extract.Text(filePath)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid file type. Only PDF, DOCX, and TXT files are allowed."})
		}
		log.Printf("text extraction failed for %s: %v", filePath, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to extract text from document"})
	}
	if len(strings.TrimSpace(text)) < extract.MinContentLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Extracted text is too short. Please upload a different document."})
	}

	quizData, err := generator.GenerateQuiz(c.Context(), text, count, ai.ModeDocument)
	if err != nil {
		log.Printf("quiz generation failed for document %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate quiz from document"})
	}

	quiz, err := persistQuiz(quizData, count, authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	// The upload only gets removed once the quiz is safely persisted; failure
	// paths leave it for the cleanup job.
	if err := os.Remove(filePath); err != nil {
		log.Printf("failed to delete processed upload %s: %v", filePath, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz generated successfully!",
		"quiz":    quiz,
	})
}

func persistQuiz(quizData ai.GeneratedQuiz, count int, creatorID string) (*models.Quiz, error) {
	createdBy, err := uuid.Parse(creatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid creator id: %w", err)
	}

	questions := make([]models.Question, len(quizData.Questions))
	for i, q := range quizData.Questions {
		questions[i] = models.Question{
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	quiz := models.Quiz{
		Title:     quizData.Title,
		Questions: datatypes.NewJSONSlice(questions),
		TimeLimit: timeLimitFor(count),
		CreatedBy: createdBy,
	}
	if err := database.DB.Create(&quiz).Error; err != nil {
		log.Printf("failed to persist quiz %q: %v", quiz.Title, err)
		return nil, err
	}
	return &quiz, nil
}

type CreateQuizRequest struct {
	Title     string            `json:"title"`
	Questions []models.Question `json:"questions"`
}

func CreateQuiz(c *fiber.Ctx) error {
	var req CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Title == "" || len(req.Questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and questions are required"})
	}

	createdBy, err := uuid.Parse(authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	quiz := models.Quiz{
		Title:     req.Title,
		Questions: datatypes.NewJSONSlice(req.Questions),
		TimeLimit: timeLimitFor(len(req.Questions)),
		CreatedBy: createdBy,
	}
	if err := database.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz created successfully!",
		"quiz":    quiz,
	})
}

func GetAllQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := database.DB.Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(quizzes)
}

func GetQuiz(c *fiber.Ctx) error {
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}
	return c.JSON(quiz)
}

// SubmittedAnswer mirrors what the quiz-taking client tracked locally. The
// correct answer is taken from the submission rather than re-derived from the
// stored quiz, so the recorded score always matches what the client displayed.
type SubmittedAnswer struct {
	Question       string `json:"question"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
}

type SubmitQuizRequest struct {
	QuizID  string            `json:"quizId"`
	Answers []SubmittedAnswer `json:"answers"`
}

// computeScore counts exact string matches; no case or whitespace
// normalization.
func computeScore(answers []SubmittedAnswer) int {
	score := 0
	for _, a := range answers {
		if a.SelectedAnswer == a.CorrectAnswer {
			score++
		}
	}
	return score
}

func SubmitQuiz(c *fiber.Ctx) error {
	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", req.QuizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	userID, err := uuid.Parse(authenticatedUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	score := computeScore(req.Answers)

	attempt := models.QuizAttempt{
		UserID:         userID,
		Topic:          quiz.Title,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		QuizID:         &quiz.ID,
	}
	if err := database.DB.Create(&attempt).Error; err != nil {
		log.Printf("failed to record quiz attempt for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Quiz submitted!",
		"score":   score,
		"total":   len(quiz.Questions),
	})
}
