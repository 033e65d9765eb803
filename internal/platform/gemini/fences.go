package gemini

import "strings"

// stripCodeFence removes a Markdown code fence envelope from a model reply
// so the remainder can be parsed as JSON. Models occasionally wrap their
// structured output in ```json ... ``` despite the response schema.
//
// Handles a reply with no fence, an opening fence only, or both fences, and
// tolerates a language tag on the opening fence. The empty string passes
// through unchanged.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")

	// Drop the language tag, if any, up to the first newline.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		firstLine := strings.TrimSpace(s[:i])
		if isFenceTag(firstLine) {
			s = s[i+1:]
		}
	} else {
		// Single-line reply like "```json" with nothing after it.
		if isFenceTag(strings.TrimSpace(s)) {
			return ""
		}
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// isFenceTag reports whether the text after an opening fence is a language
// tag rather than payload. An empty tag (bare ``` followed by a newline)
// also counts.
func isFenceTag(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
