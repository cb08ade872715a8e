package extraction

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/lunovier/pdf-text-extractor/internal/core"
	"github.com/lunovier/pdf-text-extractor/internal/models"
)

// MetadataEnricher asks the completion provider for a {description,
// keywords} summary of a text excerpt. Every failure path, from a missing
// credential to malformed model output, yields nil. Callers truncate the
// input before handing it over.
type MetadataEnricher struct {
	llm core.LLMProvider
}

var _ core.MetadataGenerator = (*MetadataEnricher)(nil)

// NewMetadataEnricher wraps the given provider. A nil provider is valid
// and means "no credential configured": Generate then returns nil without
// attempting a call.
func NewMetadataEnricher(llm core.LLMProvider) *MetadataEnricher {
	return &MetadataEnricher{llm: llm}
}

func (e *MetadataEnricher) Generate(ctx context.Context, text string) *models.GeneratedMetadata {
	if e.llm == nil {
		return nil
	}

	raw, err := e.llm.Generate(ctx, metadataSystemInstruction, metadataPrompt(text))
	if err != nil {
		log.Printf("metadata generation failed: %v", err)
		return nil
	}

	raw = stripCodeFence(raw)
	if raw == "" {
		return nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("metadata generation returned invalid JSON: %v", err)
		return nil
	}

	candidate := parsed
	if nested, ok := parsed["metadata"].(map[string]any); ok {
		candidate = nested
	}

	description, ok := candidate["description"].(string)
	if !ok || description == "" {
		return nil
	}
	rawKeywords, ok := candidate["keywords"].([]any)
	if !ok {
		return nil
	}

	keywords := make([]string, 0, len(rawKeywords))
	for _, kw := range rawKeywords {
		if s, ok := kw.(string); ok {
			keywords = append(keywords, s)
		}
	}

	// Strict allow-list: anything else on the candidate is dropped.
	return &models.GeneratedMetadata{
		Description: description,
		Keywords:    keywords,
	}
}

// stripCodeFence removes the markdown fences Gemini wraps around JSON
// even when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
