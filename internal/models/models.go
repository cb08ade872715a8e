package models

// ParseResult is the raw output of a single PDF parse. It mirrors what the
// parser collaborator reports before any normalization happens.
type ParseResult struct {
	Text      string
	NumPages  int
	NumRender int
	Info      map[string]any
	Metadata  map[string]any
	Version   string
}

// GeneratedMetadata is an AI-generated summary for one unit of text
// (whole document or a single page). It is only ever built after the
// enricher validated the model output; a failed enrichment is a nil value.
type GeneratedMetadata struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// TextResult is the payload of the plain-text extraction operation.
type TextResult struct {
	Text           string `json:"extractedText"`
	CharacterCount int    `json:"characterCount"`
	WordCount      int    `json:"wordCount"`
}

// DetailedInfo is the payload of the detailed extraction operation.
// Warning is set (and every other field zeroed) when the document yielded
// no text, e.g. image-only or corrupted PDFs. That is a degraded success,
// not an error.
type DetailedInfo struct {
	NumPages          int                `json:"numpages"`
	NumRender         int                `json:"numrender"`
	Info              map[string]any     `json:"info"`
	Metadata          map[string]any     `json:"metadata"`
	Text              string             `json:"text"`
	Version           string             `json:"version"`
	GeneratedMetadata *GeneratedMetadata `json:"generatedMetadata"`
	Warning           string             `json:"warning,omitempty"`
}

// PageMetadata carries the per-page stats plus the document-level parser
// fields echoed onto every page.
type PageMetadata struct {
	PageInfo          map[string]any     `json:"pageInfo"`
	PageMetadata      map[string]any     `json:"pageMetadata"`
	NumRender         int                `json:"numrender"`
	Version           string             `json:"version"`
	TotalPages        int                `json:"totalPages"`
	PageNumber        int                `json:"pageNumber"`
	CharacterCount    int                `json:"characterCount"`
	WordCount         int                `json:"wordCount"`
	GeneratedMetadata *GeneratedMetadata `json:"generatedMetadata"`
}

// PageInfo is one approximated page of document text. NextPage is nil on
// the last page.
type PageInfo struct {
	Page     int          `json:"page"`
	Text     string       `json:"text"`
	Metadata PageMetadata `json:"metadata"`
	NextPage *int         `json:"nextPage"`
}
