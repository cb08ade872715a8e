package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/lunovier/pdf-text-extractor/internal/config"
	"github.com/lunovier/pdf-text-extractor/internal/core/extraction"
	"github.com/lunovier/pdf-text-extractor/internal/models"
)

// Extractor is the slice of the extraction pipeline the handlers need.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) models.TextResult
	ExtractDetailedInfo(ctx context.Context, data []byte, opts extraction.InfoOptions) models.DetailedInfo
	ExtractPagesInfo(ctx context.Context, data []byte, opts extraction.PagesOptions) []models.PageInfo
}

type PdfHandler struct {
	extractor Extractor
	cfg       *config.Config
}

func NewPdfHandler(extractor Extractor, cfg *config.Config) *PdfHandler {
	return &PdfHandler{extractor: extractor, cfg: cfg}
}

// ExtractText handles POST /api/pdf/extract-text.
func (h *PdfHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	data, header, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	result := h.extractor.ExtractText(r.Context(), data)

	writeJSON(w, http.StatusOK, "Text extracted successfully", struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		models.TextResult
	}{header.Filename, header.Size, result})
}

// ExtractInfo handles POST /api/pdf/extract-info.
func (h *PdfHandler) ExtractInfo(w http.ResponseWriter, r *http.Request) {
	data, header, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	includeMetadata, textLimit := metadataFlags(r)
	if textLimit == 0 {
		textLimit = h.cfg.InfoTextLimit
	}
	info := h.extractor.ExtractDetailedInfo(r.Context(), data, extraction.InfoOptions{
		IncludeMetadata: includeMetadata,
		TextLimit:       textLimit,
	})

	writeJSON(w, http.StatusOK, "PDF information extracted successfully", struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		models.DetailedInfo
	}{header.Filename, header.Size, info})
}

// ExtractPages handles POST /api/pdf/extract-pages.
func (h *PdfHandler) ExtractPages(w http.ResponseWriter, r *http.Request) {
	data, header, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	includeMetadata, textLimit := metadataFlags(r)
	if textLimit == 0 {
		textLimit = h.cfg.PageTextLimit
	}
	pages := h.extractor.ExtractPagesInfo(r.Context(), data, extraction.PagesOptions{
		IncludeMetadata: includeMetadata,
		TextLimit:       textLimit,
	})

	writeJSON(w, http.StatusOK, "PDF pages information extracted successfully", struct {
		Filename   string            `json:"filename"`
		Size       int64             `json:"size"`
		TotalPages int               `json:"totalPages"`
		Pages      []models.PageInfo `json:"pages"`
	}{header.Filename, header.Size, len(pages), pages})
}

// readUpload decodes the multipart "pdf" field and runs upload validation.
// On any violation it writes the 400 response and returns ok=false; the
// pipeline only ever sees validated buffers.
func (h *PdfHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, *multipart.FileHeader, bool) {
	maxSize := int64(h.cfg.MaxFileSizeMB) << 20

	if err := r.ParseMultipartForm(maxSize + (1 << 20)); err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return nil, nil, false
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return nil, nil, false
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != "application/pdf" {
		writeError(w, http.StatusBadRequest, "File must be a PDF")
		return nil, nil, false
	}
	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, "File is empty")
		return nil, nil, false
	}
	if header.Size > maxSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File size too large. Maximum size is %dMB", h.cfg.MaxFileSizeMB))
		return nil, nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read uploaded file")
		return nil, nil, false
	}

	return data, header, true
}

// metadataFlags reads the includeMetadata and textLimit query params.
// textLimit 0 means "not requested": the handler then substitutes the
// configured per-operation default, and the pipeline falls back to its
// built-in default if that is unset too.
func metadataFlags(r *http.Request) (bool, int) {
	q := r.URL.Query()

	includeMetadata, _ := strconv.ParseBool(q.Get("includeMetadata"))

	textLimit := 0
	if v := q.Get("textLimit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			textLimit = n
		}
	}
	return includeMetadata, textLimit
}
