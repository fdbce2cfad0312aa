package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/c-dsouza/spacereport/internal"
	"github.com/c-dsouza/spacereport/internal/ingest"
	"github.com/c-dsouza/spacereport/pkg/models"
)

var logger = internal.Logger

const defaultPreviewRows = 5

// Pipeline runs the whole upload flow: ingest, clean, partition, serialize,
// size. It keeps no state between runs; every invocation works on its own
// freshly ingested table.
type Pipeline struct {
	TimestampColumn string
	HotWindow       time.Duration
	PreviewRows     int
}

// Result carries the report and the derived artifacts of one run. Hot and
// Cold are nil when partitioning was skipped.
type Result struct {
	Report  *models.ProcessReport
	Cleaned *models.Table
	Hot     *models.Table
	Cold    *models.Table
	CSV     []byte
	Gzip    []byte
}

// New returns a pipeline with the default timestamp column, the 30-day hot
// window and a 5-row preview.
func New() *Pipeline {
	return &Pipeline{
		TimestampColumn: DefaultTimestampColumn,
		HotWindow:       DefaultHotWindow,
		PreviewRows:     defaultPreviewRows,
	}
}

// Run processes one uploaded buffer to completion. Failures propagate
// immediately with no retry; a failed run leaves nothing behind.
func (x *Pipeline) Run(filename string, raw []byte) (*Result, error) {
	runID := uuid.New().String()
	log := logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"filename": filename,
		"bytes":    len(raw),
	})
	log.Debug("Start pipeline run")

	format := ingest.FormatFromFilename(filename)
	if format == ingest.FormatUnsupported {
		return nil, &ingest.UnsupportedFormatError{Filename: filename}
	}

	table, err := ingest.Ingest(raw, format)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(table)

	// The cutoff is read once here so that every row of this run is judged
	// against the same instant.
	cutoff := time.Now().Add(-x.HotWindow)
	part := Partition(cleaned.Table, x.TimestampColumn, cutoff)

	csvBytes, err := ToCSV(cleaned.Table)
	if err != nil {
		return nil, err
	}
	gzBytes, err := Compress(csvBytes)
	if err != nil {
		return nil, err
	}

	report := &models.ProcessReport{
		RunID:    runID,
		Filename: filename,
		Format:   format.String(),
		Columns:  cleaned.Table.Columns,
		Rows:     cleaned.Table.RowCount(),
		Clean:    cleaned.Stats,
		Partition: models.PartitionStats{
			Skipped: part.Skipped,
		},
		Size: models.SizeStats{
			CSVBytes:  len(csvBytes),
			GzipBytes: len(gzBytes),
			CSVSize:   FormatByteSize(int64(len(csvBytes))),
			GzipSize:  FormatByteSize(int64(len(gzBytes))),
		},
		Preview: cleaned.Table.Head(x.PreviewRows),
	}
	if !part.Skipped {
		report.Partition.TimestampColumn = x.TimestampColumn
		report.Partition.HotRows = part.Hot.RowCount()
		report.Partition.ColdRows = part.Cold.RowCount()
		report.Partition.UnclassifiedRows = part.Unclassified
	}

	log.WithFields(logrus.Fields{
		"rows":               report.Rows,
		"incomplete_removed": report.Clean.IncompleteRemoved,
		"duplicates_removed": report.Clean.DuplicatesRemoved,
		"partition_skipped":  report.Partition.Skipped,
		"csv_size":           report.Size.CSVSize,
		"gzip_size":          report.Size.GzipSize,
	}).Info("Done pipeline run")

	return &Result{
		Report:  report,
		Cleaned: cleaned.Table,
		Hot:     part.Hot,
		Cold:    part.Cold,
		CSV:     csvBytes,
		Gzip:    gzBytes,
	}, nil
}
