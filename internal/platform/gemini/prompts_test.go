package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
)

func TestSubjectPrompt(t *testing.T) {
	p := subjectPrompt("breuken", false)
	assert.Contains(t, p, "school subject")
	assert.Contains(t, p, "mathematical notation")
	assert.Contains(t, p, "breuken")

	p = subjectPrompt("", true)
	assert.Contains(t, p, "image")
	assert.NotContains(t, p, "Topic:")
}

func TestItemSystemInstructionNotationRules(t *testing.T) {
	mathCtx := domain.SubjectContext{Subject: "Wiskunde", IsMath: true}
	sys := itemSystemInstruction(mathCtx, 9)

	assert.Contains(t, sys, "Wiskunde")
	assert.Contains(t, sys, `\times`)
	assert.Contains(t, sys, `\frac{a}{b}`)
	assert.Contains(t, sys, "without surrounding delimiters")
	assert.Contains(t, sys, "at least 9")
	assert.NotContains(t, sys, "plain text")

	textCtx := domain.SubjectContext{Subject: "Geschiedenis", IsMath: false}
	sys = itemSystemInstruction(textCtx, 16)

	assert.Contains(t, sys, "Geschiedenis")
	assert.Contains(t, sys, "plain text")
	assert.Contains(t, sys, "between 1 and 4 words")
	assert.Contains(t, sys, "at least 16")
	assert.NotContains(t, sys, `\frac`)
}

func TestItemUserPromptBranching(t *testing.T) {
	img := &domain.ImageData{MIMEType: "image/png", Data: []byte{1}}

	exact := itemUserPrompt(generation.ItemRequest{Count: 9, Image: img, Mode: domain.ModeExact})
	assert.Contains(t, exact, "exactly as they appear")
	assert.Contains(t, exact, "fewer than 9")

	similar := itemUserPrompt(generation.ItemRequest{Count: 9, Image: img, Mode: domain.ModeSimilar})
	assert.Contains(t, similar, "style")
	assert.Contains(t, similar, "do not copy")

	text := itemUserPrompt(generation.ItemRequest{Count: 9, Topic: "breuken", Mode: domain.ModeSimilar})
	assert.Contains(t, text, "Generate 9 problems")
	assert.Contains(t, text, "breuken")
	assert.NotContains(t, text, "image")
}
