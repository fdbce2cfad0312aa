package ingest

import (
	"github.com/c-dsouza/spacereport/pkg/models"
)

// Ingest converts raw bytes of a declared format into a table. Column types
// are inferred by each decoder, not by the downstream stages. The returned
// table owns its data; callers may discard raw after Ingest returns.
func Ingest(raw []byte, format Format) (*models.Table, error) {
	switch format {
	case FormatDelimited:
		return ingestDelimited(raw)
	case FormatSpreadsheet:
		return ingestSpreadsheet(raw)
	case FormatStructured:
		return ingestStructured(raw)
	case FormatTextLines:
		return ingestTextLines(raw)
	case FormatPDF:
		return ingestPDF(raw)
	case FormatDOCX:
		return ingestDOCX(raw)
	default:
		return nil, &UnsupportedFormatError{Filename: format.String()}
	}
}

// IngestFile resolves the format from the filename and ingests raw. An
// unrecognized extension fails before any decoding runs.
func IngestFile(filename string, raw []byte) (*models.Table, error) {
	format := FormatFromFilename(filename)
	if format == FormatUnsupported {
		return nil, &UnsupportedFormatError{Filename: filename}
	}
	return Ingest(raw, format)
}
