package models

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuizQuestion is one generated multiple-choice item. Correct is the index
// into Options; the upstream model is trusted to keep it in range.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

type GenerateQuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
