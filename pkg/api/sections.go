package api

import (
	"github.com/gin-gonic/gin"

	"github.com/c-dsouza/spacereport/internal/content"
)

type sectionListResponse struct {
	Sections []string `json:"sections"`
}

// GetSections returns section names in display order.
func (x *ReportHandler) GetSections(c *gin.Context) (*Response, Error) {
	return &Response{200, &sectionListResponse{Sections: content.Names()}}, nil
}

// GetSection returns one section's markdown body and chart data.
func (x *ReportHandler) GetSection(c *gin.Context) (*Response, Error) {
	name := c.Param("name")
	section, ok := content.Get(name)
	if !ok {
		return nil, newUserErrorf(404, "Unknown section: %s", name)
	}

	return &Response{200, section}, nil
}
