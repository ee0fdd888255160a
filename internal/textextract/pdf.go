// Package textextract pulls plain text out of uploaded files so the
// extraction patterns can run over it.
package textextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the text content of a PDF, page by page. Words within
// a row are joined with single spaces and rows are separated by newlines,
// which keeps labels like "Wages (Box 1): $52,000.00" on one line for the
// downstream field patterns.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// IsPDF reports whether the data carries the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}
