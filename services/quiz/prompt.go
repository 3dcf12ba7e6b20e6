package quiz

const (
	SYSTEM_PROMPT = `You are a quiz generator. Return ONLY valid JSON arrays. No markdown, no explanation, just JSON.`

	QUIZ_PROMPT = `Generate %d multiple choice questions about: %s
Difficulty: %s

Return ONLY a JSON array in this exact format, no other text:
[
  {
    "question": "The question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct": 0,
    "explanation": "Brief explanation of the correct answer."
  }
]

Make sure "correct" is the index (0-3) of the right answer in the options array.`
)
