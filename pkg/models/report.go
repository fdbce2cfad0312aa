package models

// CleanStats reports how many rows the cleaning stage removed, split by
// reason. Incomplete rows are counted before duplicate detection runs, so a
// row is never counted twice.
type CleanStats struct {
	IncompleteRemoved int `json:"incomplete_removed"`
	DuplicatesRemoved int `json:"duplicates_removed"`
}

// PartitionStats reports the hot/cold split. Skipped is set when the table
// has no timestamp column; in that case the counts are all zero and the
// cleaned table is treated as a single partition downstream.
type PartitionStats struct {
	Skipped          bool   `json:"skipped"`
	TimestampColumn  string `json:"timestamp_column,omitempty"`
	HotRows          int    `json:"hot_rows"`
	ColdRows         int    `json:"cold_rows"`
	UnclassifiedRows int    `json:"unclassified_rows"`
}

// SizeStats reports byte sizes of both encodings, raw and human-readable.
type SizeStats struct {
	CSVBytes  int    `json:"csv_bytes"`
	GzipBytes int    `json:"gzip_bytes"`
	CSVSize   string `json:"csv_size"`
	GzipSize  string `json:"gzip_size"`
}

// ProcessReport is the full result summary of one pipeline run.
type ProcessReport struct {
	RunID     string         `json:"run_id"`
	Filename  string         `json:"filename"`
	Format    string         `json:"format"`
	Columns   []string       `json:"columns"`
	Rows      int            `json:"rows"`
	Clean     CleanStats     `json:"clean"`
	Partition PartitionStats `json:"partition"`
	Size      SizeStats      `json:"size"`
	Preview   []Record       `json:"preview"`
}
