// Package extraction composes the parser, text transforms and metadata
// enrichment into the three extraction operations the API exposes. Once
// the upload passed validation nothing in here raises: parser failures
// degrade to empty results with a warning, enrichment failures to nil
// metadata.
package extraction

import (
	"context"
	"log"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/lunovier/pdf-text-extractor/internal/core"
	"github.com/lunovier/pdf-text-extractor/internal/core/textutil"
	"github.com/lunovier/pdf-text-extractor/internal/models"
)

const (
	DefaultInfoTextLimit = 4000
	DefaultPageTextLimit = 2000

	noTextWarning = "PDF may contain only images or be corrupted. No text could be extracted."
)

// InfoOptions controls the detailed-info operation. A non-positive
// TextLimit falls back to DefaultInfoTextLimit.
type InfoOptions struct {
	IncludeMetadata bool
	TextLimit       int
}

// PagesOptions controls the per-page operation. TextLimit bounds each
// page's enrichment input, not the page text itself.
type PagesOptions struct {
	IncludeMetadata bool
	TextLimit       int
}

type Extractor struct {
	parser core.PdfParser
	meta   core.MetadataGenerator

	// pageConcurrency caps concurrent per-page enrichment calls. 1 keeps
	// the sequential baseline; operators opt into fan-out explicitly
	// because it multiplies completion cost per request.
	pageConcurrency int
}

func NewExtractor(parser core.PdfParser, meta core.MetadataGenerator, pageConcurrency int) *Extractor {
	if pageConcurrency < 1 {
		pageConcurrency = 1
	}
	return &Extractor{parser: parser, meta: meta, pageConcurrency: pageConcurrency}
}

// ExtractText returns the normalized full text with character and word
// counts. A parser failure means "no extractable text", not an error:
// image-only and structurally odd PDFs are a normal case.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) models.TextResult {
	res, err := e.parser.Parse(ctx, data)
	if err != nil {
		log.Printf("pdf extraction warning: %v", err)
		return models.TextResult{}
	}

	text := textutil.CleanText(res.Text)
	return models.TextResult{
		Text:           text,
		CharacterCount: utf8.RuneCountInString(text),
		WordCount:      textutil.WordCount(text),
	}
}

// ExtractDetailedInfo returns page counts, parser info and normalized
// text, plus one whole-document enrichment when requested. A parser
// failure produces the zeroed degraded-success result with a warning.
func (e *Extractor) ExtractDetailedInfo(ctx context.Context, data []byte, opts InfoOptions) models.DetailedInfo {
	if opts.TextLimit <= 0 {
		opts.TextLimit = DefaultInfoTextLimit
	}

	res, err := e.parser.Parse(ctx, data)
	if err != nil {
		log.Printf("pdf extraction warning: %v", err)
		return models.DetailedInfo{Warning: noTextWarning}
	}

	text := textutil.CleanText(res.Text)

	var generated *models.GeneratedMetadata
	if opts.IncludeMetadata {
		generated = e.meta.Generate(ctx, textutil.Truncate(text, opts.TextLimit))
	}

	return models.DetailedInfo{
		NumPages:          res.NumPages,
		NumRender:         res.NumRender,
		Info:              res.Info,
		Metadata:          res.Metadata,
		Text:              text,
		Version:           res.Version,
		GeneratedMetadata: generated,
	}
}

// ExtractPagesInfo splits the document into per-page segments. Zero pages
// or a parser failure yield an empty slice. Each page's enrichment is
// independent; calls run through an errgroup capped at pageConcurrency
// and results are joined back in page order.
func (e *Extractor) ExtractPagesInfo(ctx context.Context, data []byte, opts PagesOptions) []models.PageInfo {
	if opts.TextLimit <= 0 {
		opts.TextLimit = DefaultPageTextLimit
	}

	res, err := e.parser.Parse(ctx, data)
	if err != nil {
		log.Printf("pdf extraction warning: %v", err)
		return []models.PageInfo{}
	}

	totalPages := res.NumPages
	if totalPages == 0 {
		return []models.PageInfo{}
	}

	fullText := textutil.CleanText(res.Text)
	textPerPage := textutil.SplitTextByPages(fullText, totalPages)

	generated := make([]*models.GeneratedMetadata, totalPages)
	if opts.IncludeMetadata {
		g := new(errgroup.Group)
		g.SetLimit(e.pageConcurrency)
		for i := 0; i < totalPages; i++ {
			i := i
			g.Go(func() error {
				generated[i] = e.meta.Generate(ctx, textutil.Truncate(textPerPage[i], opts.TextLimit))
				return nil
			})
		}
		_ = g.Wait()
	}

	pages := make([]models.PageInfo, 0, totalPages)
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		pageText := textPerPage[pageNum-1]

		page := models.PageInfo{
			Page: pageNum,
			Text: pageText,
			Metadata: models.PageMetadata{
				PageInfo:          res.Info,
				PageMetadata:      res.Metadata,
				NumRender:         res.NumRender,
				Version:           res.Version,
				TotalPages:        totalPages,
				PageNumber:        pageNum,
				CharacterCount:    utf8.RuneCountInString(pageText),
				WordCount:         textutil.WordCount(pageText),
				GeneratedMetadata: generated[pageNum-1],
			},
		}
		if pageNum < totalPages {
			next := pageNum + 1
			page.NextPage = &next
		}
		pages = append(pages, page)
	}

	return pages
}
