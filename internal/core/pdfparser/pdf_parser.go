// Package pdfparser implements the PdfParser capability on top of
// github.com/ledongthuc/pdf, a pure Go PDF reader. No CGO, single-binary
// deployments stay simple.
package pdfparser

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/lunovier/pdf-text-extractor/internal/core"
	"github.com/lunovier/pdf-text-extractor/internal/models"
)

type Parser struct {
	// docconvFallback enables a second extraction pass through docconv
	// (pdftotext) when the pure Go reader finds pages but no text.
	docconvFallback bool
}

var _ core.PdfParser = (*Parser)(nil)

func NewParser(docconvFallback bool) *Parser {
	return &Parser{docconvFallback: docconvFallback}
}

// Parse reads the whole document and reports text, page counts and the
// trailer Info dictionary. The pdf library panics on some malformed xref
// tables, so the body runs behind a recover that converts panics into a
// parse error.
func (p *Parser) Parse(ctx context.Context, data []byte) (res *models.ParseResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	numRender := 0

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageText(page)
		if err != nil || text == "" {
			continue
		}
		numRender++
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}

	result := &models.ParseResult{
		Text:      sb.String(),
		NumPages:  numPages,
		NumRender: numRender,
		Info:      infoDict(reader),
		Version:   headerVersion(data),
	}

	if result.Text == "" && numPages > 0 && p.docconvFallback {
		p.applyDocconvFallback(data, result)
	}

	return result, nil
}

// extractPageText isolates the per-page panic surface of the pdf library.
func extractPageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page text panic: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// applyDocconvFallback runs docconv once over the buffer and uses its
// body and meta when the pure Go pass came back empty. Fallback failures
// are logged and ignored; the caller still gets the page counts.
func (p *Parser) applyDocconvFallback(data []byte, result *models.ParseResult) {
	res, err := docconv.Convert(bytes.NewReader(data), "application/pdf", false)
	if err != nil {
		log.Printf("docconv fallback failed: %v", err)
		return
	}
	result.Text = res.Body
	if len(res.Meta) > 0 {
		meta := make(map[string]any, len(res.Meta))
		for k, v := range res.Meta {
			meta[k] = v
		}
		result.Metadata = meta
	}
}

// infoDict flattens the trailer /Info dictionary into plain Go values.
// Nested structures are rare in Info and get dropped.
func infoDict(reader *pdf.Reader) map[string]any {
	defer func() {
		_ = recover()
	}()

	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil
	}

	out := make(map[string]any)
	for _, key := range info.Keys() {
		switch v := info.Key(key); v.Kind() {
		case pdf.String:
			out[key] = v.RawString()
		case pdf.Name:
			out[key] = v.Name()
		case pdf.Integer:
			out[key] = v.Int64()
		case pdf.Real:
			out[key] = v.Float64()
		case pdf.Bool:
			out[key] = v.Bool()
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// headerVersion sniffs the "%PDF-x.y" header from the raw buffer. The
// reader itself does not expose the format version.
func headerVersion(data []byte) string {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ""
	}
	rest := data[5:]
	end := 0
	for end < len(rest) && end < 8 {
		c := rest[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return string(rest[:end])
}
