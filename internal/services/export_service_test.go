package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportFixture(t *testing.T, orderCount int) *ExportService {
	t.Helper()
	orders, users := reportFixtureOrders(orderCount)
	reportSvc := NewReportService(&mockOrderRepository{orders: orders}, &mockUserRepository{users: users})
	reportSvc.now = func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	return NewExportService(reportSvc)
}

func TestExportExcelLayout(t *testing.T) {
	svc := newExportFixture(t, 3)

	data, filename, err := svc.ExportExcel(context.Background(), SalesReportQuery{Period: "monthly", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, "sales-report.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Sales Report"

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sales Report", title)

	totalOrders, err := f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "3", totalOrders)

	// Status block lists Delivered with the full count.
	statusLabel, _ := f.GetCellValue(sheet, "G8")
	statusCount, _ := f.GetCellValue(sheet, "H8")
	assert.Equal(t, "Delivered", statusLabel)
	assert.Equal(t, "3", statusCount)

	// First data row sits under the header.
	orderID, _ := f.GetCellValue(sheet, "A14")
	assert.Equal(t, "ORD-0001", orderID)
}

func TestExportExcelTotalsRowMatchesSum(t *testing.T) {
	svc := newExportFixture(t, 5)

	data, _, err := svc.ExportExcel(context.Background(), SalesReportQuery{Period: "monthly", Status: "all"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Sales Report"
	totalsRow := 13 + 1 + 5

	label, _ := f.GetCellValue(sheet, fmt.Sprintf("A%d", totalsRow))
	assert.Equal(t, "Totals", label)

	var sum float64
	for i := 0; i < 5; i++ {
		cell, _ := f.GetCellValue(sheet, fmt.Sprintf("J%d", 14+i))
		v, err := strconv.ParseFloat(cell, 64)
		require.NoError(t, err)
		sum += v
	}

	totalCell, _ := f.GetCellValue(sheet, fmt.Sprintf("J%d", totalsRow))
	total, err := strconv.ParseFloat(totalCell, 64)
	require.NoError(t, err)
	assert.Equal(t, sum, total, "totals row must equal the sum of the rows")
	assert.Equal(t, 450.0, total)
}

func TestExportPDFProducesDocument(t *testing.T) {
	svc := newExportFixture(t, 3)

	data, filename, err := svc.ExportPDF(context.Background(), SalesReportQuery{Period: "monthly", Status: "all"})
	require.NoError(t, err)

	assert.Equal(t, "sales_report.pdf", filename)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestExportPDFPaginatesLongReports(t *testing.T) {
	// Enough rows to force at least one page break.
	svc := newExportFixture(t, 80)

	short, _, err := svc.ExportPDF(context.Background(), SalesReportQuery{Period: "monthly", Status: "all"})
	require.NoError(t, err)

	tiny := newExportFixture(t, 1)
	small, _, err := tiny.ExportPDF(context.Background(), SalesReportQuery{Period: "monthly", Status: "all"})
	require.NoError(t, err)

	assert.Greater(t, len(short), len(small))
	// gofpdf writes one /Page object per page.
	assert.Greater(t, bytes.Count(short, []byte("/Page")), bytes.Count(small, []byte("/Page")))
}

func TestExportHandlesEmptyResult(t *testing.T) {
	reportSvc := NewReportService(&mockOrderRepository{}, &mockUserRepository{})
	reportSvc.now = time.Now
	svc := NewExportService(reportSvc)

	data, _, err := svc.ExportExcel(context.Background(), SalesReportQuery{Period: "daily"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	pdfData, _, err := svc.ExportPDF(context.Background(), SalesReportQuery{Period: "daily"})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfData)
}
