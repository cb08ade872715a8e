package core

import (
	"context"

	"github.com/lunovier/pdf-text-extractor/internal/models"
)

type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// MetadataGenerator produces descriptive metadata for a unit of text.
// A nil result means enrichment was unavailable or failed; implementations
// never return an error to the caller.
type MetadataGenerator interface {
	Generate(ctx context.Context, text string) *models.GeneratedMetadata
}
