package quiz

import "strings"

// stripCodeFence removes a markdown code fence wrapping a raw model reply.
// The upstream is instructed to return bare JSON but commonly wraps it in
// ```json blocks anyway. Handled shapes: no fence (returned unchanged), a
// fence with or without a language tag, and a fence missing its trailing
// newline or closing marker.
func stripCodeFence(raw string) string {
	content := strings.TrimSpace(raw)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	// Drop the opening fence line, language tag included.
	if idx := strings.Index(content, "\n"); idx != -1 {
		content = content[idx+1:]
	} else {
		content = strings.TrimPrefix(content, "```")
	}

	// Drop everything from the last closing fence on, if one exists.
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}
