package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trendora/admin-api/internal/models"
)

func TestCalculateTotalsSumsAndCounts(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusDelivered, TotalPrice: 100, FinalAmount: 90,
			Discount: models.Discount{BestOffer: 5, Coupon: 5, Total: 10}},
		{Status: models.StatusDelivered, TotalPrice: 200, FinalAmount: 180,
			Discount: models.Discount{Coupon: 20, Total: 20}},
		{Status: models.StatusCancelled, TotalPrice: 50, FinalAmount: 50},
		{Status: models.StatusPendingPayment, TotalPrice: 30, FinalAmount: 30},
		{Status: models.StatusReturnRequest, TotalPrice: 40, FinalAmount: 40},
	}

	totals := CalculateTotals(orders)

	assert.Equal(t, 5, totals.Count)
	assert.Equal(t, 420.0, totals.TotalPrice)
	assert.Equal(t, 390.0, totals.FinalAmount)
	assert.Equal(t, 30.0, totals.Discount.Total)
	assert.Equal(t, 5.0, totals.Discount.BestOffer)
	assert.Equal(t, 25.0, totals.Discount.Coupon)

	assert.Equal(t, 2, totals.DeliveredCount)
	assert.Equal(t, 1, totals.CancelledCount)
	assert.Equal(t, 1, totals.PendingPaymentCount)
	assert.Equal(t, 1, totals.ReturnRequestCount)
	assert.Zero(t, totals.PlacedCount)
	assert.Zero(t, totals.RejectedCount)
	assert.Zero(t, totals.ReturnedCount)
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil)
	assert.Equal(t, models.ReportTotals{}, totals)
}

func TestStatusCountCoversEveryStatus(t *testing.T) {
	orders := make([]models.Order, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		orders = append(orders, models.Order{Status: status})
	}

	totals := CalculateTotals(orders)

	for _, status := range models.AllStatuses {
		assert.Equal(t, 1, totals.StatusCount(status), "status %s", status)
	}
}
