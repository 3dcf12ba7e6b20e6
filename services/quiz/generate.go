package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"studysets/models"

	"github.com/tmc/langchaingo/llms"
)

const (
	defaultDifficulty   = "medium"
	defaultNumQuestions = 5
	rawExcerptLimit     = 200
)

// GenerateQuiz makes one blocking call to the model and parses the reply into
// question records. Malformed output is surfaced as a FormatError, never
// repaired beyond stripping a code fence. No retry is performed.
func (s *Service) GenerateQuiz(topic, difficulty string, numQuestions int) ([]models.QuizQuestion, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if strings.TrimSpace(difficulty) == "" {
		difficulty = defaultDifficulty
	}
	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}

	prompt := fmt.Sprintf(QUIZ_PROMPT, numQuestions, topic, difficulty)

	ctx := context.Background()
	log.Printf("[INFO] Calling LLM for quiz generation: topic=%q difficulty=%s questions=%d", topic, difficulty, numQuestions)
	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, SYSTEM_PROMPT),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(1500),
	)
	if err != nil {
		log.Printf("[ERROR] Failed to generate LLM response: %v", err)
		return nil, &UpstreamError{Err: fmt.Errorf("failed to generate LLM response: %w", err)}
	}
	if len(resp.Choices) == 0 {
		log.Printf("[ERROR] LLM returned no choices")
		return nil, &UpstreamError{Err: fmt.Errorf("LLM returned an empty response")}
	}

	raw := strings.TrimSpace(resp.Choices[0].Content)
	cleaned := stripCodeFence(raw)

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		log.Printf("[ERROR] Failed to parse LLM reply as a question array: %v", err)
		return nil, &FormatError{Excerpt: truncate(raw, rawExcerptLimit), Err: err}
	}

	log.Printf("[INFO] Successfully generated %d quiz questions", len(questions))
	return questions, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
