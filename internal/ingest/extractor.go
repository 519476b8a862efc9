package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns a stored resume file into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

type pdfExtractor struct{}

// NewPDFExtractor returns the PDF-backed extractor.
func NewPDFExtractor() TextExtractor {
	return pdfExtractor{}
}

// ExtractText concatenates the plain text of every page in order.
func (pdfExtractor) ExtractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}
