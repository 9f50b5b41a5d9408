package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseReportQueryDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/reports/sales", nil)

	q := parseReportQuery(c)

	// Without parameters the report covers the full order history.
	assert.Equal(t, "all", q.Period)
	assert.Equal(t, "all", q.Status)
	assert.Equal(t, 1, q.Page)
}

func TestDownloadRejectsUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The format is validated before any store access, so a handler with
	// nil services is enough to exercise the rejection path.
	h := NewReportHandler(nil, nil)

	router := gin.New()
	router.GET("/admin/reports/sales/download/:format", h.Download)

	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales/download/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid report format")
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler()
	router := gin.New()
	router.GET("/health", h.Index)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
