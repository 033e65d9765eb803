package gemini

import (
	"fmt"
	"strings"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
)

// mathNotationRules is the notation convention for subjects that need
// mathematical notation. The renderer expects exactly this LaTeX subset, so
// the model is forbidden from deviating.
const mathNotationRules = `Write every problem and answer in LaTeX without surrounding delimiters: no $, \( or \) around expressions. ` +
	`Use \times for multiplication, \div for division, and \frac{a}{b} for fractions. ` +
	`Do not use any other notation and do not deviate from these conventions.`

// plainTextRules is the notation convention for all other subjects.
const plainTextRules = `Write every problem and answer as plain text: no LaTeX, Markdown, HTML, or any other markup. ` +
	`Keep every answer short, between 1 and 4 words.`

// subjectPrompt builds the single instruction used for subject detection.
func subjectPrompt(topic string, hasImage bool) string {
	var b strings.Builder
	b.WriteString("Determine the academic school subject for the following input")
	if hasImage {
		b.WriteString(" (a topic and/or an image of learning material)")
	}
	b.WriteString(". Answer with the name of the subject and whether the subject requires ")
	b.WriteString("mathematical notation to write down its problems and answers.\n")
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}
	return b.String()
}

// itemSystemInstruction builds the system-level instruction embedding the
// detected subject, the notation rules, and the uniqueness requirement.
func itemSystemInstruction(sc domain.SubjectContext, count int) string {
	rules := plainTextRules
	if sc.IsMath {
		rules = mathNotationRules
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You create question/answer pairs for a bingo game in the school subject %s.\n", sc.Subject)
	b.WriteString(rules)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Produce at least %d pairs and make every problem unique within the set.", count)
	return b.String()
}

// itemUserPrompt builds the user-level instruction. Its wording branches on
// whether an image is present and on the generation mode: verbatim
// extraction with backfill, similar-style generation, or pure text-topic
// generation.
func itemUserPrompt(req generation.ItemRequest) string {
	var b strings.Builder

	switch {
	case req.Image != nil && req.Mode == domain.ModeExact:
		fmt.Fprintf(&b, "Extract the problems and answers from the attached image exactly as they appear. ")
		fmt.Fprintf(&b,
			"If the image contains fewer than %d problems, add new problems of the same kind and difficulty until you reach %d.\n",
			req.Count, req.Count)
	case req.Image != nil:
		fmt.Fprintf(&b,
			"Use the attached image only as a reference for style and difficulty. Generate %d new problems matching it; do not copy problems from the image.\n",
			req.Count)
	default:
		fmt.Fprintf(&b, "Generate %d problems with their answers.\n", req.Count)
	}

	if req.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	}

	return b.String()
}
