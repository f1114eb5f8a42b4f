package ai

import "fmt"

// Mode selects the prompt template. The two modes differ only in how content
// is sourced: a literal topic string or text extracted from a document.
type Mode string

const (
	ModeTopic    Mode = "topic"
	ModeDocument Mode = "document"
)

const topicPromptTemplate = `Generate %d multiple-choice quiz questions on the topic "%s".
Each question should have **exactly 4 answer choices**, with **one correct answer**.
Return the quiz **only** as a valid JSON object in this format:

{
  "title": "Quiz Title",
  "questions": [
    {
      "questionText": "What is X?",
      "options": ["A", "B", "C", "D"],
      "correctAnswer": "B"
    },
    ...
  ]
}`

const documentPromptTemplate = `You are an AI that strictly generates quiz questions from a given document.
**DO NOT** generate questions beyond the content. Only ask **directly related** questions.

Generate %d multiple-choice questions based on the document below.
- Each question must have **exactly 4 options**.
- Clearly indicate the correct answer.
- **Return only a valid JSON object** (No explanations, extra text, or formatting).

**Document Content**:
"%s"

**Expected JSON Format**:
{
  "title": "Document-Based Quiz",
  "questions": [
    {
      "questionText": "What is X?",
      "options": ["A", "B", "C", "D"],
      "correctAnswer": "B"
    },
    ...
  ]
}

Now generate and return the JSON quiz.`

func buildPrompt(content string, count int, mode Mode) string {
	if mode == ModeDocument {
		return fmt.Sprintf(documentPromptTemplate, count, content)
	}
	return fmt.Sprintf(topicPromptTemplate, count, content)
}
