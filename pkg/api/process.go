package api

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/c-dsouza/spacereport/internal"
	"github.com/c-dsouza/spacereport/internal/ingest"
	"github.com/c-dsouza/spacereport/internal/pipeline"
)

// runUpload reads the multipart upload and runs one full pipeline
// invocation. The buffer lives only for this request; nothing is shared
// between runs, so the download endpoints simply run the pipeline again.
func (x *ReportHandler) runUpload(c *gin.Context) (*pipeline.Result, Error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, wrapUserError(err, 400, "Failed to read uploaded file")
	}

	fd, err := header.Open()
	if err != nil {
		return nil, wrapSystemError(err, 500, "Failed to open uploaded file")
	}
	defer fd.Close()

	raw, err := ioutil.ReadAll(fd)
	if err != nil {
		return nil, wrapSystemError(err, 500, "Failed to read uploaded file body")
	}

	result, err := x.Pipeline.Run(header.Filename, raw)
	if err != nil {
		var unsupportedErr *ingest.UnsupportedFormatError
		var ingestionErr *ingest.IngestionError
		switch {
		case errors.As(err, &unsupportedErr):
			return nil, wrapUserError(err, 400, "Unsupported file type")
		case errors.As(err, &ingestionErr):
			return nil, wrapUserError(err, 400, "Failed to parse uploaded file")
		default:
			// Unexpected failure: reported once here, generic message out.
			internal.HandleError(err)
			return nil, wrapSystemError(err, 500, "Failed to process uploaded file")
		}
	}

	return result, nil
}

// ProcessUpload runs the pipeline and returns the JSON report.
func (x *ReportHandler) ProcessUpload(c *gin.Context) (*Response, Error) {
	result, apiErr := x.runUpload(c)
	if apiErr != nil {
		return nil, apiErr
	}

	return &Response{200, result.Report}, nil
}

// DownloadCSV returns the canonical text encoding of the cleaned table.
func (x *ReportHandler) DownloadCSV(c *gin.Context) {
	result, apiErr := x.runUpload(c)
	if apiErr != nil {
		sendResponse(c, nil, apiErr)
		return
	}

	sendAttachment(c, "processed.csv", "text/csv", result.CSV)
}

// DownloadGzip returns the compressed encoding of the cleaned table.
func (x *ReportHandler) DownloadGzip(c *gin.Context) {
	result, apiErr := x.runUpload(c)
	if apiErr != nil {
		sendResponse(c, nil, apiErr)
		return
	}

	sendAttachment(c, "processed.csv.gz", "application/gzip", result.Gzip)
}

func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	Logger.WithFields(logrus.Fields{
		"path":       c.FullPath(),
		"request_id": c.GetHeader("x-request-id"),
		"ipaddr":     c.ClientIP(),
		"resp_code":  200,
		"filename":   filename,
	}).Info("Audit log")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, contentType, body)
}
