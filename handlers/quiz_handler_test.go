package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampQuestionCount(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"absent defaults", 0, 5},
		{"negative defaults", -3, 5},
		{"lower bound", 1, 1},
		{"in range", 12, 12},
		{"upper bound", 20, 20},
		{"over the cap", 50, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampQuestionCount(tt.in))
		})
	}
}

func TestTimeLimitFor(t *testing.T) {
	for count := 1; count <= 20; count++ {
		assert.Equal(t, count*30, timeLimitFor(count))
	}
}

func TestComputeScoreExactEquality(t *testing.T) {
	answers := []SubmittedAnswer{
		{Question: "q1", SelectedAnswer: "A", CorrectAnswer: "A"},
		{Question: "q2", SelectedAnswer: "B", CorrectAnswer: "C"},
		{Question: "q3", SelectedAnswer: "a", CorrectAnswer: "A"},  // case matters
		{Question: "q4", SelectedAnswer: "A ", CorrectAnswer: "A"}, // whitespace matters
	}
	assert.Equal(t, 1, computeScore(answers))
	assert.Equal(t, 0, computeScore(nil))
}

func TestComputeScoreMonotonic(t *testing.T) {
	var answers []SubmittedAnswer
	prev := 0
	for i := 0; i < 10; i++ {
		answers = append(answers, SubmittedAnswer{SelectedAnswer: "yes", CorrectAnswer: "yes"})
		score := computeScore(answers)
		assert.GreaterOrEqual(t, score, prev)
		assert.LessOrEqual(t, score, len(answers))
		prev = score
	}
	assert.Equal(t, 10, prev)
}
