package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how raw uploaded bytes should be decoded into a table.
// The set is closed; anything else maps to FormatUnsupported.
type Format int

const (
	FormatUnsupported Format = iota
	FormatDelimited          // .csv
	FormatSpreadsheet        // .xlsx
	FormatStructured         // .json
	FormatTextLines          // .txt
	FormatPDF                // .pdf
	FormatDOCX               // .docx
)

func (x Format) String() string {
	switch x {
	case FormatDelimited:
		return "csv"
	case FormatSpreadsheet:
		return "xlsx"
	case FormatStructured:
		return "json"
	case FormatTextLines:
		return "txt"
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

// FormatFromFilename maps a trailing file extension (case-insensitive) to a
// Format. Unknown extensions map to FormatUnsupported.
func FormatFromFilename(name string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "csv":
		return FormatDelimited
	case "xlsx":
		return FormatSpreadsheet
	case "json":
		return FormatStructured
	case "txt":
		return FormatTextLines
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	default:
		return FormatUnsupported
	}
}

// UnsupportedFormatError is returned before any decoding starts when the
// format is not in the recognized set.
type UnsupportedFormatError struct {
	Filename string
}

func (x *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported file type: %s", x.Filename)
}

// IngestionError is returned when a recognized format cannot be decoded at
// all (e.g. a corrupt document).
type IngestionError struct {
	Format Format
	Err    error
}

func (x *IngestionError) Error() string {
	return fmt.Sprintf("Failed to ingest %s data: %v", x.Format, x.Err)
}

func (x *IngestionError) Unwrap() error { return x.Err }
