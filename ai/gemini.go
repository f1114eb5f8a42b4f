package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNoQuestions is returned when the model produced no usable questions,
// whether because the call failed, the response was not valid JSON, or the
// parsed quiz was empty. Callers must not persist a quiz in that case.
var ErrNoQuestions = errors.New("model returned no usable questions")

const fallbackTitle = "Generated Quiz"

// Config carries everything the generation adapter needs. It is passed in at
// construction instead of being read from the environment inside the adapter.
type Config struct {
	APIKey string
	Model  string
}

type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type GeneratedQuiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Client generates quizzes through the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai: missing API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}

	return &Client{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateQuiz asks the model for count questions about content and returns
// the normalized quiz. The returned error is ErrNoQuestions whenever the quiz
// would be empty, so callers are forced to branch on failure rather than
// inspect the question slice.
func (c *Client) GenerateQuiz(ctx context.Context, content string, count int, mode Mode) (GeneratedQuiz, error) {
	prompt := buildPrompt(content, count, mode)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return GeneratedQuiz{Title: fallbackTitle}, fmt.Errorf("%w: %v", ErrNoQuestions, err)
	}

	quiz := parseResponse(responseText(resp), content, mode)
	if len(quiz.Questions) == 0 {
		return quiz, ErrNoQuestions
	}
	return quiz, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// rawQuestion tolerates the field-name drift seen in model output: the
// question text arrives as either "questionText" or "question".
type rawQuestion struct {
	QuestionText  string   `json:"questionText"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type rawQuiz struct {
	Title     string        `json:"title"`
	Questions []rawQuestion `json:"questions"`
}

// parseResponse never fails: malformed output degrades to a quiz with the
// fallback title and no questions, and malformed questions pass through with
// placeholder values rather than being dropped.
func parseResponse(raw string, content string, mode Mode) GeneratedQuiz {
	cleaned := stripCodeFences(raw)

	var parsed rawQuiz
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return GeneratedQuiz{Title: fallbackTitle, Questions: []Question{}}
	}

	if len(parsed.Questions) == 0 {
		return GeneratedQuiz{Title: fallbackTitle, Questions: []Question{}}
	}

	title := parsed.Title
	if title == "" {
		if mode == ModeDocument {
			title = "Document-Based Quiz"
		} else {
			title = content + " Quiz"
		}
	}

	questions := make([]Question, len(parsed.Questions))
	for i, q := range parsed.Questions {
		text := q.QuestionText
		if text == "" {
			text = q.Question
		}
		if text == "" {
			text = "Untitled Question"
		}
		options := q.Options
		if options == nil {
			options = []string{}
		}
		questions[i] = Question{
			QuestionText:  text,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	return GeneratedQuiz{Title: title, Questions: questions}
}

// stripCodeFences removes markdown code-fence wrapping, optionally tagged
// with a json language marker.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
