package analytics

import "github.com/trendora/admin-api/internal/models"

// CalculateTotals rolls up a filtered order set into report totals: sums of
// stored amounts plus a counter per status. Both the on-screen report and
// the exporters consume this single rollup so they can never disagree.
func CalculateTotals(orders []models.Order) models.ReportTotals {
	totals := models.ReportTotals{Count: len(orders)}

	for _, order := range orders {
		totals.TotalPrice += order.TotalPrice
		totals.Discount.BestOffer += order.Discount.BestOffer
		totals.Discount.Coupon += order.Discount.Coupon
		totals.Discount.Total += order.Discount.Total
		totals.FinalAmount += order.FinalAmount

		switch order.Status {
		case models.StatusPendingPayment:
			totals.PendingPaymentCount++
		case models.StatusPlaced:
			totals.PlacedCount++
		case models.StatusRejected:
			totals.RejectedCount++
		case models.StatusDelivered:
			totals.DeliveredCount++
		case models.StatusCancelled:
			totals.CancelledCount++
		case models.StatusReturnRequest:
			totals.ReturnRequestCount++
		case models.StatusReturned:
			totals.ReturnedCount++
		}
	}

	return totals
}
