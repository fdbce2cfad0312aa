package ingest

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"github.com/c-dsouza/spacereport/pkg/models"
	"github.com/pkg/errors"
)

// TextColumn is the single column produced by the text-like decoders.
const TextColumn = "text_content"

// tableFromText flattens text into a single-column table, one trimmed line
// per row. Empty lines stay as present empty-string cells; only a truly
// missing cell counts as absent downstream. A trailing newline terminates
// the last line, it does not open a new one.
func tableFromText(text string) *models.Table {
	table := models.NewTable([]string{TextColumn})
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		table.Append(models.Record{TextColumn: strings.TrimSpace(line)})
	}
	return table
}

func ingestTextLines(raw []byte) (*models.Table, error) {
	return tableFromText(string(raw)), nil
}

// ingestPDF extracts text page by page. A page whose extraction fails
// contributes nothing; only a document that cannot be opened at all aborts.
func ingestPDF(raw []byte) (*models.Table, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &IngestionError{Format: FormatPDF, Err: errors.Wrap(err, "Failed to open PDF document")}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return tableFromText(strings.TrimSuffix(sb.String(), "\n")), nil
}

// pageText extracts one page's text, converting a decoder panic into an
// error. The decoder panics on some malformed-but-openable pages, and one
// bad page must not abort the whole document.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page text extraction failed: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// ingestDOCX extracts paragraph text in document order. A non-paragraph
// item (e.g. an embedded table) contributes nothing.
func ingestDOCX(raw []byte) (*models.Table, error) {
	doc, err := docx.Parse(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &IngestionError{Format: FormatDOCX, Err: errors.Wrap(err, "Failed to open DOCX document")}
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}

	return tableFromText(strings.Join(paragraphs, "\n")), nil
}
