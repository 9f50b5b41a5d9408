package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trendora/admin-api/internal/services"
)

type ReportHandler struct {
	reportSvc *services.ReportService
	exportSvc *services.ExportService
}

func NewReportHandler(reportSvc *services.ReportService, exportSvc *services.ExportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		exportSvc: exportSvc,
	}
}

func parseReportQuery(c *gin.Context) services.SalesReportQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return services.SalesReportQuery{
		Period:    c.DefaultQuery("period", "all"),
		Status:    c.DefaultQuery("status", "all"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      page,
	}
}

// @Summary Sales Report
// @Description Returns one page of the filtered sales report with totals
// @Tags Reports
// @Produce json
// @Param period query string false "all, daily, weekly, monthly, yearly or custom" default(all)
// @Param status query string false "Order status filter" default(all)
// @Param startDate query string false "Custom range start (YYYY-MM-DD)"
// @Param endDate query string false "Custom range end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Security BearerAuth
// @Router /admin/reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	report, err := h.reportSvc.GetSalesReport(c.Request.Context(), parseReportQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Download Sales Report
// @Description Generates and downloads the sales report as a spreadsheet or PDF
// @Tags Reports
// @Produce application/octet-stream
// @Param format path string true "Report format (excel, pdf)"
// @Param period query string false "all, daily, weekly, monthly, yearly or custom" default(all)
// @Param status query string false "Order status filter" default(all)
// @Param startDate query string false "Custom range start (YYYY-MM-DD)"
// @Param endDate query string false "Custom range end (YYYY-MM-DD)"
// @Security BearerAuth
// @Router /admin/reports/sales/download/{format} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	format := c.Param("format")
	query := parseReportQuery(c)

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	// Validate the format before touching the store.
	switch format {
	case "excel":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		data, filename, err = h.exportSvc.ExportExcel(c.Request.Context(), query)
	case "pdf":
		contentType = "application/pdf"
		data, filename, err = h.exportSvc.ExportPDF(c.Request.Context(), query)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidFormat.Error()})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate %s: %v", format, err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
