package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

// PDFSource extracts per-page text from PDF documents. Upstream extraction
// is unreliable about whitespace: some documents come back with spaces
// fully collapsed ("Closingvalue$45,156.04"), which is why the downstream
// surface patterns tolerate both spellings.
type PDFSource struct {
	// MaxPages caps how many pages are read per document; 0 means no cap.
	MaxPages int
	Logger   *slog.Logger
}

func NewPDFSource(maxPages int, logger *slog.Logger) *PDFSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFSource{MaxPages: maxPages, Logger: logger}
}

// Pages reads the document and returns one Page per physical page. Pages
// whose text cannot be decoded are returned with empty text rather than
// dropped, so page numbering stays aligned with the physical document.
func (s *PDFSource) Pages(ctx context.Context, path string) (pages []entity.Page, err error) {
	// The pdf library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}
	if s.MaxPages > 0 && numPages > s.MaxPages {
		numPages = s.MaxPages
	}

	for i := 1; i <= numPages; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, entity.Page{Number: i})
			continue
		}
		text := extractByRow(page)
		if text == "" {
			text = extractPlain(page)
		}
		if text == "" {
			s.Logger.Debug("page yielded no text", "path", path, "page", i)
		}
		pages = append(pages, entity.Page{Number: i, Text: text})
	}
	return pages, nil
}

// extractByRow reconstructs lines from row-grouped text. Best layout
// preservation for well-structured PDFs.
func extractByRow(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// extractPlain is the fallback extraction path; it tends to collapse
// whitespace but decodes some font encodings GetTextByRow cannot.
func extractPlain(page pdf.Page) string {
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
