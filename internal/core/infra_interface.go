package core

import (
	"context"

	"github.com/lunovier/pdf-text-extractor/internal/models"
)

// PdfParser converts a raw PDF byte buffer into a ParseResult.
// It abstracts the concrete parsing library so the extraction pipeline
// never depends on a specific implementation.
type PdfParser interface {
	Parse(ctx context.Context, data []byte) (*models.ParseResult, error)
}
