// Package generation provides interfaces and error types for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini), allowing the application to detect
// subjects and generate bingo item pools without coupling to a specific
// external service.
package generation
