package api

import (
	_ "embed"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexPage []byte

// ServeIndex serves the single report page. All interaction happens through
// the JSON API; the page itself is static.
func ServeIndex(c *gin.Context) {
	c.Data(200, "text/html; charset=utf-8", indexPage)
}
