package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kamaukev/quiz_genie/models"
	"github.com/stretchr/testify/assert"
)

func TestProgressAttemptDefaults(t *testing.T) {
	now := time.Now()
	got := progressAttempt(models.QuizAttempt{
		Score:          3,
		TotalQuestions: 5,
		CreatedAt:      now,
	})

	assert.Equal(t, "topic", got.QuizType)
	assert.Equal(t, "General", got.Topic)
	assert.Equal(t, 3, got.Score)
	assert.Equal(t, 5, got.TotalQuestions)
	assert.Equal(t, now, got.Date)
	assert.Nil(t, got.QuizID)
}

func TestProgressAttemptKeepsRecordedValues(t *testing.T) {
	quizID := uuid.New()
	got := progressAttempt(models.QuizAttempt{
		QuizType:       "document",
		Topic:          "Cell Biology",
		Score:          9,
		TotalQuestions: 10,
		QuizID:         &quizID,
	})

	assert.Equal(t, "document", got.QuizType)
	assert.Equal(t, "Cell Biology", got.Topic)
	assert.Equal(t, &quizID, got.QuizID)
}
