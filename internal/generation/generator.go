package generation

import (
	"context"

	"github.com/jvanloon/bingo-api/internal/domain"
)

// ItemRequest carries everything the item generator needs for one batch.
type ItemRequest struct {
	// Context is the subject-detection result the prompts are built from.
	Context domain.SubjectContext

	// Topic is the user's free-text topic. May be empty when an image is
	// provided.
	Topic string

	// Count is the number of items to generate.
	Count int

	// Image is an optional decoded image payload.
	Image *domain.ImageData

	// Mode governs how the image is used: verbatim extraction or style
	// reference. Ignored when Image is nil.
	Mode domain.GenerationMode
}

// SubjectDetector infers the academic subject and notation requirements
// from user input. Implementations must never surface a parse error: any
// failure other than a configuration error degrades to
// domain.FallbackSubjectContext().
type SubjectDetector interface {
	DetectSubject(ctx context.Context, topic string, image *domain.ImageData) (domain.SubjectContext, error)
}

// ItemGenerator produces the pool of question/answer pairs used to populate
// bingo cards. The two calls are sequenced strictly: DetectSubject completes
// before GenerateItems is issued, because the item prompts depend on the
// detected subject.
//
// Returns the ordered item batch, or an error wrapping ErrGenerationFailed
// when the response is empty or unparsable. Individual malformed items are
// repaired with the sentinel rather than failing the batch.
type ItemGenerator interface {
	GenerateItems(ctx context.Context, req ItemRequest) ([]domain.BingoItem, error)
}

// Generator combines both entry points of the content-generation adapter.
type Generator interface {
	SubjectDetector
	ItemGenerator
}
