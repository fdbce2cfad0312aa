package api_test

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-dsouza/spacereport/pkg/api"
	"github.com/c-dsouza/spacereport/pkg/models"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api.SetupRoute(engine.Group("/api/v1"), api.NewReportHandler())
	return engine
}

func uploadRequest(t *testing.T, path, filename string, body []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func sampleCSV() []byte {
	old := time.Now().Add(-45 * 24 * time.Hour).Format(time.RFC3339)
	recent := time.Now().Add(-2 * 24 * time.Hour).Format(time.RFC3339)
	return []byte(fmt.Sprintf(
		"name,value,timestamp\nalpha,1,%s\nalpha,1,%s\nbeta,,%s\ngamma,3,%s\n",
		old, old, recent, recent))
}

func TestGetSections(t *testing.T) {
	engine := newTestEngine()

	t.Run("Lists the catalog in order", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sections", nil))
		require.Equal(tt, 200, w.Code)

		var resp struct {
			Sections []string `json:"sections"`
		}
		require.NoError(tt, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(tt, 7, len(resp.Sections))
		assert.Equal(tt, "General", resp.Sections[0])
	})

	t.Run("Returns one section with its charts", func(tt *testing.T) {
		w := httptest.NewRecorder()
		path := "/api/v1/sections/" + url.PathEscape("Evaluation and Analysis of Trade-offs")
		engine.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		require.Equal(tt, 200, w.Code)

		var resp struct {
			Name   string `json:"name"`
			Body   string `json:"body"`
			Charts []struct {
				Kind string `json:"kind"`
			} `json:"charts"`
		}
		require.NoError(tt, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(tt, resp.Body)
		require.Equal(tt, 2, len(resp.Charts))
		assert.Equal(tt, "bar", resp.Charts[0].Kind)
	})

	t.Run("Unknown section is a 404", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sections/nope", nil))
		assert.Equal(tt, 404, w.Code)
	})
}

func TestProcessUpload(t *testing.T) {
	engine := newTestEngine()

	t.Run("Returns the pipeline report", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process", "upload.csv", sampleCSV()))
		require.Equal(tt, 200, w.Code)

		var report models.ProcessReport
		require.NoError(tt, json.Unmarshal(w.Body.Bytes(), &report))
		assert.NotEmpty(tt, report.RunID)
		assert.Equal(tt, "csv", report.Format)
		assert.Equal(tt, 2, report.Rows)
		assert.Equal(tt, 1, report.Clean.IncompleteRemoved)
		assert.Equal(tt, 1, report.Clean.DuplicatesRemoved)
		assert.Equal(tt, 1, report.Partition.HotRows)
		assert.Equal(tt, 1, report.Partition.ColdRows)
		assert.NotEmpty(tt, report.Size.CSVSize)
	})

	t.Run("Unsupported extension is a 400", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process", "data.xml", []byte("<root/>")))
		assert.Equal(tt, 400, w.Code)
	})

	t.Run("Corrupt document is a 400", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process", "data.xlsx", []byte("not a workbook")))
		assert.Equal(tt, 400, w.Code)
	})

	t.Run("Missing file part is a 400", func(tt *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/process", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(tt, 400, w.Code)
	})
}

func TestDownloads(t *testing.T) {
	engine := newTestEngine()

	t.Run("CSV download is an attachment", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process/csv", "upload.csv", sampleCSV()))
		require.Equal(tt, 200, w.Code)
		assert.Equal(tt, `attachment; filename="processed.csv"`, w.Header().Get("Content-Disposition"))
		assert.Contains(tt, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(tt, w.Body.String(), "name,value,timestamp")
	})

	t.Run("Gzip download decompresses to the CSV", func(tt *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process/gzip", "upload.csv", sampleCSV()))
		require.Equal(tt, 200, w.Code)
		assert.Equal(tt, `attachment; filename="processed.csv.gz"`, w.Header().Get("Content-Disposition"))
		assert.Contains(tt, w.Header().Get("Content-Type"), "application/gzip")

		gr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(tt, err)
		restored, err := ioutil.ReadAll(gr)
		require.NoError(tt, err)
		assert.Contains(tt, string(restored), "name,value,timestamp")
	})

	t.Run("Successful download leaves an audit log entry", func(tt *testing.T) {
		logger, hook := logtest.NewNullLogger()
		orig := api.Logger
		api.Logger = logger
		defer func() { api.Logger = orig }()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, uploadRequest(tt, "/api/v1/process/csv", "upload.csv", sampleCSV()))
		require.Equal(tt, 200, w.Code)

		var found bool
		for _, entry := range hook.AllEntries() {
			if entry.Message == "Audit log" && entry.Data["path"] == "/api/v1/process/csv" {
				found = true
			}
		}
		assert.True(tt, found)
	})
}
