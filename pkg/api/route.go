package api

import (
	"github.com/gin-gonic/gin"
)

type handler func(c *gin.Context) (*Response, Error)

func handleRequest(c *gin.Context, hdlr handler) {
	resp, err := hdlr(c)
	sendResponse(c, resp, err)
}

// SetupRoute registers the report API under the given group.
func SetupRoute(r *gin.RouterGroup, hdlr *ReportHandler) {
	r.GET("/sections", func(c *gin.Context) {
		handleRequest(c, hdlr.GetSections)
	})
	r.GET("/sections/:name", func(c *gin.Context) {
		handleRequest(c, hdlr.GetSection)
	})
	r.POST("/process", func(c *gin.Context) {
		handleRequest(c, hdlr.ProcessUpload)
	})
	r.POST("/process/csv", hdlr.DownloadCSV)
	r.POST("/process/gzip", hdlr.DownloadGzip)
}
