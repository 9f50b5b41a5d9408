package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/trendora/admin-api/internal/models"
)

// ExportService renders a built sales report as a downloadable document.
// Both formats write to memory; nothing touches disk.
type ExportService struct {
	reportSvc *ReportService
}

// NewExportService creates the report exporter.
func NewExportService(reportSvc *ReportService) *ExportService {
	return &ExportService{reportSvc: reportSvc}
}

func periodLabel(q SalesReportQuery) string {
	if q.Period == "custom" && q.StartDate != "" && q.EndDate != "" {
		return fmt.Sprintf("%s to %s", q.StartDate, q.EndDate)
	}
	if q.Period == "" {
		return "all"
	}
	return q.Period
}

// ExportExcel renders the full filtered report as a workbook: a title band,
// a summary block, an order status block beside it, then the order table
// with a bold totals row.
func (s *ExportService) ExportExcel(ctx context.Context, q SalesReportQuery) ([]byte, string, error) {
	rows, totals, err := s.reportSvc.BuildExport(ctx, q)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Report"
	_ = f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
	})
	totalsStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.MergeCell(sheet, "A1", "J1")
	_ = f.SetCellValue(sheet, "A1", "Sales Report")
	_ = f.SetCellStyle(sheet, "A1", "J1", titleStyle)

	_ = f.MergeCell(sheet, "A2", "J2")
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Period: %s | Generated: %s",
		periodLabel(q), time.Now().Format("Jan 2, 2006")))

	// Summary block
	_ = f.SetCellValue(sheet, "A4", "Summary")
	_ = f.SetCellStyle(sheet, "A4", "A4", sectionStyle)
	_ = f.SetCellValue(sheet, "A5", "Total Orders")
	_ = f.SetCellValue(sheet, "B5", totals.Count)
	_ = f.SetCellValue(sheet, "A6", "Total Sales")
	_ = f.SetCellValue(sheet, "B6", totals.FinalAmount)
	_ = f.SetCellValue(sheet, "A7", "Total Discount")
	_ = f.SetCellValue(sheet, "B7", totals.Discount.Total)

	// Status block next to the summary
	_ = f.SetCellValue(sheet, "G4", "Order Status Summary")
	_ = f.SetCellStyle(sheet, "G4", "G4", sectionStyle)
	for i, status := range models.AllStatuses {
		row := 5 + i
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), string(status))
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), totals.StatusCount(status))
	}

	headerRow := 13
	headers := []string{"Order ID", "Date", "Customer", "Products", "Payment Method",
		"Payment Status", "Order Status", "Original Price", "Discount", "Final Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("J%d", headerRow), headerStyle)

	for i, r := range rows {
		row := headerRow + 1 + i
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.OrderID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Date)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Customer)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Products)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.PaymentMethod)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.PaymentStatus)
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Status)
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.OriginalPrice)
		_ = f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.Discount)
		_ = f.SetCellValue(sheet, fmt.Sprintf("J%d", row), r.FinalAmount)
	}

	totalsRow := headerRow + 1 + len(rows)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow), "Totals")
	_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow), totals.TotalPrice)
	_ = f.SetCellValue(sheet, fmt.Sprintf("I%d", totalsRow), totals.Discount.Total)
	_ = f.SetCellValue(sheet, fmt.Sprintf("J%d", totalsRow), totals.FinalAmount)
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalsRow), fmt.Sprintf("J%d", totalsRow), totalsStyle)

	_ = f.SetColWidth(sheet, "A", "J", 15)
	_ = f.SetColWidth(sheet, "D", "D", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "sales-report.xlsx", nil
}

// ExportPDF renders the full filtered report as a paginated PDF: a header,
// four summary figures, a status distribution with percentages, then the
// order table with the header repeated on every page.
func (s *ExportService) ExportPDF(ctx context.Context, q SalesReportQuery) ([]byte, string, error) {
	rows, totals, err := s.reportSvc.BuildExport(ctx, q)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Sales Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on %s", time.Now().Format("Jan 2, 2006 15:04")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s", periodLabel(q)))
	pdf.Ln(10)

	// Summary cards
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	cards := []struct {
		label string
		value string
	}{
		{"Total Orders", fmt.Sprintf("%d", totals.Count)},
		{"Total Amount", formatAmount(totals.TotalPrice)},
		{"Total Discount", formatAmount(totals.Discount.Total)},
		{"Net Revenue", formatAmount(totals.FinalAmount)},
	}
	for _, card := range cards {
		pdf.Cell(60, 6, card.label+":")
		pdf.Cell(40, 6, card.value)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Status distribution
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Order Status Distribution")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, status := range models.AllStatuses {
		count := totals.StatusCount(status)
		pct := 0.0
		if totals.Count > 0 {
			pct = float64(count) / float64(totals.Count) * 100
		}
		pdf.Cell(60, 6, string(status)+":")
		pdf.Cell(40, 6, fmt.Sprintf("%d (%.1f%%)", count, pct))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	writeTableHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(35, 8, "Order ID", "1", 0, "L", true, 0, "")
		pdf.CellFormat(28, 8, "Date", "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 8, "Customer", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 8, "Payment", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 8, "Status", "1", 0, "L", true, 0, "")
		pdf.CellFormat(32, 8, "Amount", "1", 1, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Orders")
	pdf.Ln(8)
	writeTableHeader()

	for _, r := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader()
		}
		pdf.CellFormat(35, 7, r.OrderID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 7, r.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, r.Customer, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, r.PaymentMethod, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, r.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 7, formatAmount(r.FinalAmount), "1", 1, "R", false, 0, "")
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "sales_report.pdf", nil
}
