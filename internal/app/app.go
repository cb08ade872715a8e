package app

import (
	"context"
	"fmt"
	"log"

	"github.com/lunovier/pdf-text-extractor/internal/config"
	"github.com/lunovier/pdf-text-extractor/internal/core"
	"github.com/lunovier/pdf-text-extractor/internal/core/extraction"
	"github.com/lunovier/pdf-text-extractor/internal/core/llm"
	"github.com/lunovier/pdf-text-extractor/internal/core/pdfparser"
)

type App struct {
	Extractor *extraction.Extractor
	LLM       *llm.GeminiLLM
	Server    *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var provider core.LLMProvider
	var gemini *llm.GeminiLLM

	if cfg.AIAPIKey != "" {
		g, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the LLM provider, %w", err)
		}
		gemini = g
		provider = g
		log.Println("LLM provider initialized and ready.")
	}

	parser := pdfparser.NewParser(cfg.DocconvFallback)
	enricher := extraction.NewMetadataEnricher(provider)
	extractor := extraction.NewExtractor(parser, enricher, cfg.MetadataConcurrency)

	server := NewServer(cfg, extractor)

	return &App{Extractor: extractor, LLM: gemini, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
}
