package llm

import (
	"context"

	"github.com/ekaraca/cardscan/internal/entity"
)

// ExtractRequest carries one card's OCR text to the external extraction step,
// along with the heuristic candidate hints that inform the request.
type ExtractRequest struct {
	OCRText string
	Hints   entity.CandidateHints
}

// Extractor is the external structured-extraction collaborator. It returns an
// arbitrary string that is expected, not trusted, to contain one JSON object
// matching the card extraction schema; repair and validation happen in the
// pipeline.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (string, error)
}
