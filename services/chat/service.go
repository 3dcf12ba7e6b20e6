package chat

import (
	"context"
	"log"
	"strings"

	"studysets/models"

	"github.com/tmc/langchaingo/llms"
)

const (
	SYSTEM_PROMPT = `You are a friendly study assistant built into a flashcards and quiz app. Keep your replies concise and encouraging. Explain concepts in plain language, suggest effective ways to study, and stay focused on educational topics. Never respond with metadata or explain who you are. Just give direct, human-like answers.`

	// FallbackReply is returned when the upstream call fails. Chat never
	// surfaces error detail to the caller.
	FallbackReply = "Sorry, I'm having trouble thinking right now. Please try again in a moment!"

	// EmptyMessageReply is returned when the user sends nothing.
	EmptyMessageReply = "Please type a message so I can help you study!"

	historyLimit = 10
)

type Service struct {
	llm llms.Model
}

func NewService(llm llms.Model) *Service {
	return &Service{llm: llm}
}

// ProcessMessage returns the assistant reply for message, given the
// client-supplied conversation history. Failures are swallowed behind
// FallbackReply so the caller always gets a usable reply string.
func (s *Service) ProcessMessage(message string, history []models.Message) string {
	if strings.TrimSpace(message) == "" {
		log.Printf("[ERROR] Empty chat message received")
		return EmptyMessageReply
	}

	msgs := s.buildMessages(message, history)

	ctx := context.Background()
	log.Printf("[INFO] Calling LLM for chat reply with %d messages", len(msgs))
	resp, err := s.llm.GenerateContent(ctx, msgs,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(500),
	)
	if err != nil {
		log.Printf("[ERROR] Chat LLM call failed: %v", err)
		return FallbackReply
	}
	if len(resp.Choices) == 0 {
		log.Printf("[ERROR] Chat LLM returned no choices")
		return FallbackReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Content)
	if reply == "" {
		return FallbackReply
	}

	log.Printf("[INFO] Successfully generated chat reply")
	return reply
}

func (s *Service) buildMessages(message string, history []models.Message) []llms.MessageContent {
	msgs := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, SYSTEM_PROMPT),
	}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	for _, turn := range history {
		switch turn.Role {
		case "user":
			msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, turn.Content))
		case "assistant":
			msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeAI, turn.Content))
		}
	}

	// Clients sometimes push the new message into history before sending the
	// request; appending it again would duplicate the turn upstream.
	if len(history) == 0 || history[len(history)-1].Content != message {
		msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, message))
	}

	return msgs
}
