package domain

import "fmt"

// FallbackSubject is the subject used when detection fails for any reason
// other than a configuration error. The game must stay playable, so subject
// detection degrades to this constant instead of surfacing an error.
const FallbackSubject = "Algemeen"

// ItemSentinel replaces a missing problem or answer in a generated item.
// Repairing a single malformed item beats discarding the whole batch.
const ItemSentinel = "Fout"

// SubjectContext is the result of subject detection: the academic subject
// inferred from the user's input and whether that subject requires
// mathematical notation. It is produced once per generation and is
// immutable thereafter; the item generator uses it to pick prompt formatting.
type SubjectContext struct {
	Subject string `json:"subject"`
	IsMath  bool   `json:"isMath"`
}

// FallbackSubjectContext returns the constant soft-fail detection result.
func FallbackSubjectContext() SubjectContext {
	return SubjectContext{Subject: FallbackSubject, IsMath: false}
}

// BingoItem is a single question/answer pair in a generated batch.
// IDs are synthetic and sequential within the batch ("item-0", "item-1", ...);
// ordering follows the order returned by the model.
type BingoItem struct {
	ID      string `json:"id"`
	Problem string `json:"problem"`
	Answer  string `json:"answer"`
}

// NewBingoItem builds an item with its sequence-based ID, substituting the
// sentinel for a missing problem or answer.
func NewBingoItem(index int, problem, answer string) BingoItem {
	if problem == "" {
		problem = ItemSentinel
	}
	if answer == "" {
		answer = ItemSentinel
	}
	return BingoItem{
		ID:      fmt.Sprintf("item-%d", index),
		Problem: problem,
		Answer:  answer,
	}
}

// ImageData is a decoded image payload ready to be sent to the model as an
// inline part.
type ImageData struct {
	MIMEType string
	Data     []byte
}

// GenerationMode governs how an uploaded image is used during item
// generation: extract its content verbatim, or use it only as a style
// reference.
type GenerationMode string

const (
	// ModeExact extracts the problems visible in the image verbatim and
	// backfills up to the requested count with matching items.
	ModeExact GenerationMode = "exact"

	// ModeSimilar generates new items in the style of the image content.
	ModeSimilar GenerationMode = "similar"
)

// Validate checks that the mode is one of the recognized values.
func (m GenerationMode) Validate() error {
	switch m {
	case ModeExact, ModeSimilar:
		return nil
	default:
		return ErrInvalidMode
	}
}
