// Package gemini implements the generation interfaces using Google's
// Gemini API. It builds the subject-detection and item-generation prompts,
// requests structured JSON output, and defensively parses the replies.
package gemini
