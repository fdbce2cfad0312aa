package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/c-dsouza/spacereport/internal/pipeline"
)

var Logger = logrus.New()

// Response is a successful handler result.
type Response struct {
	Code    int
	Message interface{}
}

// ReportHandler serves the section catalog and the upload pipeline. It
// holds only configuration; every request runs on its own freshly built
// table, so no locking is needed across concurrent requests.
type ReportHandler struct {
	Pipeline *pipeline.Pipeline
}

// NewReportHandler builds a handler around a default pipeline.
func NewReportHandler() *ReportHandler {
	return &ReportHandler{Pipeline: pipeline.New()}
}

func sendResponse(c *gin.Context, resp *Response, err Error) {
	var code int
	if resp != nil {
		code = resp.Code
	}

	Logger.WithFields(logrus.Fields{
		"path":       c.FullPath(),
		"request_id": c.GetHeader("x-request-id"),
		"ipaddr":     c.ClientIP(),
		"resp_code":  code,
		"error":      err,
	}).Info("Audit log")

	if err != nil {
		Logger.WithFields(logrus.Fields{
			"error": err,
			"url":   c.Request.URL,
		}).Error("Request failed")
		c.JSON(err.Code(), gin.H{"message": err.Message()})
	} else {
		c.JSON(resp.Code, resp.Message)
	}
}
