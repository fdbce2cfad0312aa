package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itchyny/gojq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/c-dsouza/spacereport/internal"
	"github.com/c-dsouza/spacereport/internal/ingest"
	"github.com/c-dsouza/spacereport/internal/pipeline"
	"github.com/c-dsouza/spacereport/pkg/api"
)

var logger = internal.Logger

type serveParams struct {
	addr     string
	port     int
	logLevel string
}

type processParams struct {
	input      string
	outDir     string
	tsColumn   string
	windowDays int
	query      string
	archive    string
	logLevel   string
}

func main() {
	var sp serveParams
	var pp processParams

	app := &cli.App{
		Name:  "spacereport",
		Usage: "interactive data reduction report",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the report web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "addr",
						Aliases:     []string{"a"},
						Value:       "127.0.0.1",
						Usage:       "Bind address",
						EnvVars:     []string{"SPACEREPORT_ADDR"},
						Destination: &sp.addr,
					},
					&cli.IntFlag{
						Name:        "port",
						Aliases:     []string{"p"},
						Value:       10080,
						Usage:       "Bind port number",
						EnvVars:     []string{"SPACEREPORT_PORT"},
						Destination: &sp.port,
					},
					&cli.StringFlag{
						Name:        "log-level",
						Value:       "INFO",
						Usage:       "Log level (TRACE, DEBUG, INFO, WARN, ERROR)",
						EnvVars:     []string{"SPACEREPORT_LOG_LEVEL"},
						Destination: &sp.logLevel,
					},
				},
				Action: func(c *cli.Context) error {
					return serveCommand(sp)
				},
			},
			{
				Name:      "process",
				Usage:     "Run the reduction pipeline once on a local file",
				ArgsUsage: "<input file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out-dir",
						Aliases:     []string{"o"},
						Value:       ".",
						Usage:       "Directory for processed.csv and processed.csv.gz",
						Destination: &pp.outDir,
					},
					&cli.StringFlag{
						Name:        "timestamp-column",
						Value:       pipeline.DefaultTimestampColumn,
						Usage:       "Column used for the hot/cold split",
						Destination: &pp.tsColumn,
					},
					&cli.IntFlag{
						Name:        "window-days",
						Value:       30,
						Usage:       "Hot window in days",
						Destination: &pp.windowDays,
					},
					&cli.StringFlag{
						Name:        "query",
						Aliases:     []string{"q"},
						Usage:       "jq expression reshaping a JSON input before tabulation",
						Destination: &pp.query,
					},
					&cli.StringFlag{
						Name:        "archive",
						Usage:       "Also write the cold partition to this parquet file",
						Destination: &pp.archive,
					},
					&cli.StringFlag{
						Name:        "log-level",
						Value:       "INFO",
						Usage:       "Log level (TRACE, DEBUG, INFO, WARN, ERROR)",
						Destination: &pp.logLevel,
					},
				},
				Action: func(c *cli.Context) error {
					pp.input = c.Args().First()
					if pp.input == "" {
						return fmt.Errorf("input file is required")
					}
					return processCommand(pp)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("spacereport error")
	}
}

func serveCommand(params serveParams) error {
	internal.SetLogLevel(params.logLevel)
	internal.InitErrorHandler()
	defer internal.FlushError()

	api.Logger = logger
	logger.WithFields(logrus.Fields{
		"addr": params.addr,
		"port": params.port,
	}).Info("Start report server")

	r := gin.Default()
	r.GET("/", api.ServeIndex)

	v1 := r.Group("/api/v1")
	api.SetupRoute(v1, api.NewReportHandler())

	return r.Run(fmt.Sprintf("%s:%d", params.addr, params.port))
}

func processCommand(params processParams) error {
	internal.SetLogLevel(params.logLevel)

	raw, err := ioutil.ReadFile(params.input)
	if err != nil {
		return err
	}

	if params.query != "" {
		if ingest.FormatFromFilename(params.input) != ingest.FormatStructured {
			return fmt.Errorf("--query only applies to JSON input")
		}
		q, err := gojq.Parse(params.query)
		if err != nil {
			return err
		}
		if raw, err = ingest.ApplyQuery(raw, q); err != nil {
			return err
		}
	}

	pl := pipeline.New()
	pl.TimestampColumn = params.tsColumn
	pl.HotWindow = time.Duration(params.windowDays) * 24 * time.Hour

	result, err := pl.Run(filepath.Base(params.input), raw)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(params.outDir, "processed.csv")
	if err := ioutil.WriteFile(csvPath, result.CSV, 0644); err != nil {
		return err
	}
	gzPath := filepath.Join(params.outDir, "processed.csv.gz")
	if err := ioutil.WriteFile(gzPath, result.Gzip, 0644); err != nil {
		return err
	}

	if params.archive != "" {
		if result.Cold == nil {
			logger.Warn("Partitioning skipped, no cold partition to archive")
		} else if err := pipeline.WriteParquet(result.Cold, params.archive); err != nil {
			return err
		}
	}

	report := result.Report
	fields := logrus.Fields{
		"rows":               report.Rows,
		"incomplete_removed": report.Clean.IncompleteRemoved,
		"duplicates_removed": report.Clean.DuplicatesRemoved,
		"csv":                csvPath,
		"csv_size":           report.Size.CSVSize,
		"gzip":               gzPath,
		"gzip_size":          report.Size.GzipSize,
	}
	if report.Partition.Skipped {
		fields["partition"] = "skipped (no timestamp column)"
	} else {
		fields["hot_rows"] = report.Partition.HotRows
		fields["cold_rows"] = report.Partition.ColdRows
		fields["unclassified_rows"] = report.Partition.UnclassifiedRows
	}
	logger.WithFields(fields).Info("Processing report")

	return nil
}
