package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trendora/admin-api/internal/analytics"
	"github.com/trendora/admin-api/internal/models"
	"github.com/trendora/admin-api/internal/repository"
)

// ReportPageSize is the number of orders per report listing page.
const ReportPageSize = 10

// SalesReportQuery carries the sales report request parameters after
// handler-level parsing. Period is one of all, daily, weekly, monthly,
// yearly or custom; StartDate/EndDate apply only to custom and arrive as
// YYYY-MM-DD.
type SalesReportQuery struct {
	Period    string
	Status    string
	StartDate string
	EndDate   string
	Page      int
}

// ReportService builds the sales report listing and the flattened order
// rows the exporters render.
type ReportService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository

	now func() time.Time
}

// NewReportService creates the sales report service.
func NewReportService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// DateFilter maps a symbolic period to an order filter. Custom requires
// both dates and stretches the end to end-of-day so a single-day custom
// range still matches that day's orders; "all" and unknown periods mean no
// time bound at all.
func DateFilter(period, startDate, endDate string, now time.Time) repository.OrderFilter {
	filter := repository.OrderFilter{}

	switch period {
	case "daily":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		filter.From = &start
		filter.To = &now
	case "weekly":
		start := now.AddDate(0, 0, -7)
		filter.From = &start
		filter.To = &now
	case "monthly":
		start := now.AddDate(0, -1, 0)
		filter.From = &start
		filter.To = &now
	case "yearly":
		start := now.AddDate(-1, 0, 0)
		filter.From = &start
		filter.To = &now
	case "custom":
		start, startErr := time.Parse("2006-01-02", startDate)
		end, endErr := time.Parse("2006-01-02", endDate)
		if startErr == nil && endErr == nil {
			end = end.Add(24*time.Hour - time.Nanosecond)
			filter.From = &start
			filter.To = &end
		}
	}

	return filter
}

// GetSalesReport assembles one page of the sales report. The totals and
// payment stats always cover the whole filtered set, not just the page.
func (s *ReportService) GetSalesReport(ctx context.Context, q SalesReportQuery) (*models.SalesReport, error) {
	filter := DateFilter(q.Period, q.StartDate, q.EndDate, s.now())
	filter.Status = q.Status

	page := q.Page
	if page < 1 {
		page = 1
	}

	all, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := analytics.CalculateTotals(all)

	paymentStats := make(map[string]int)
	for _, order := range all {
		paymentStats[order.PaymentMethod]++
	}

	totalOrders := int64(len(all))
	totalPages := int((totalOrders + ReportPageSize - 1) / ReportPageSize)
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	pageOrders, err := s.orderRepo.FindPage(ctx, filter, int64(page-1)*ReportPageSize, ReportPageSize)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildRows(ctx, pageOrders)
	if err != nil {
		return nil, err
	}

	return &models.SalesReport{
		Orders:       rows,
		Totals:       totals,
		PaymentStats: paymentStats,
		Period:       q.Period,
		Status:       q.Status,
		StartDate:    q.StartDate,
		EndDate:      q.EndDate,
		Pagination: models.Pagination{
			Page:        page,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
			NextPage:    page + 1,
			PrevPage:    page - 1,
			TotalOrders: totalOrders,
		},
	}, nil
}

// BuildExport fetches the full filtered order set, unpaginated, joined and
// totalled for the exporters.
func (s *ReportService) BuildExport(ctx context.Context, q SalesReportQuery) ([]models.OrderRow, models.ReportTotals, error) {
	filter := DateFilter(q.Period, q.StartDate, q.EndDate, s.now())
	filter.Status = q.Status

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, models.ReportTotals{}, err
	}

	rows, err := s.buildRows(ctx, orders)
	if err != nil {
		return nil, models.ReportTotals{}, err
	}

	return rows, analytics.CalculateTotals(orders), nil
}

// buildRows joins customer names onto orders and flattens the line items
// into a single display string per order.
func (s *ReportService) buildRows(ctx context.Context, orders []models.Order) ([]models.OrderRow, error) {
	ids := make([]primitive.ObjectID, 0, len(orders))
	seen := make(map[primitive.ObjectID]struct{}, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.UserID]; !ok {
			seen[order.UserID] = struct{}{}
			ids = append(ids, order.UserID)
		}
	}

	names, err := s.userRepo.FindNamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]models.OrderRow, 0, len(orders))
	for _, order := range orders {
		customer := names[order.UserID]
		if customer == "" {
			customer = "Unknown"
		}

		products := make([]string, 0, len(order.OrderedItems))
		for _, item := range order.OrderedItems {
			products = append(products, fmt.Sprintf("%s (x%d)", item.ProductName, item.Quantity))
		}

		rows = append(rows, models.OrderRow{
			OrderID:       order.OrderID,
			Date:          order.CreatedAt.Format("Jan 2, 2006"),
			Customer:      customer,
			Products:      strings.Join(products, ", "),
			PaymentMethod: order.PaymentMethod,
			PaymentStatus: order.PaymentStatus,
			Status:        string(order.Status),
			OriginalPrice: order.TotalPrice,
			Discount:      order.Discount.Total,
			FinalAmount:   order.FinalAmount,
		})
	}
	return rows, nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
