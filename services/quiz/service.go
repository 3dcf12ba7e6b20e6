package quiz

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// Service turns a topic into multiple-choice questions via an
// OpenAI-compatible chat model.
type Service struct {
	llm llms.Model
}

func NewService(llm llms.Model) *Service {
	return &Service{llm: llm}
}

// FormatError reports an upstream reply that could not be parsed as the
// expected JSON question array. Excerpt carries at most 200 characters of the
// raw, unsanitized reply for diagnostics.
type FormatError struct {
	Excerpt string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("AI returned invalid JSON: %s", e.Excerpt)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UpstreamError reports a failed call to the text generation API.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
