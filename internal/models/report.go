package models

// ReportTotals is the rollup over a filtered order set. All values are
// pass-through sums of stored amounts; nothing here re-derives prices.
type ReportTotals struct {
	Count               int      `json:"count"`
	TotalPrice          float64  `json:"totalPrice"`
	Discount            Discount `json:"discount"`
	FinalAmount         float64  `json:"finalAmount"`
	PendingPaymentCount int      `json:"pendingPaymentCount"`
	PlacedCount         int      `json:"placedCount"`
	RejectedCount       int      `json:"rejectedCount"`
	DeliveredCount      int      `json:"deliveredCount"`
	CancelledCount      int      `json:"cancelledCount"`
	ReturnRequestCount  int      `json:"returnRequestCount"`
	ReturnedCount       int      `json:"returnedCount"`
}

// StatusCount returns the counter for a given status.
func (t ReportTotals) StatusCount(status OrderStatus) int {
	switch status {
	case StatusPendingPayment:
		return t.PendingPaymentCount
	case StatusPlaced:
		return t.PlacedCount
	case StatusRejected:
		return t.RejectedCount
	case StatusDelivered:
		return t.DeliveredCount
	case StatusCancelled:
		return t.CancelledCount
	case StatusReturnRequest:
		return t.ReturnRequestCount
	case StatusReturned:
		return t.ReturnedCount
	}
	return 0
}

// OrderRow is one order prepared for the report table and the exporters.
// Customer and Products are already joined/summarised so renderers stay
// pure presentation.
type OrderRow struct {
	OrderID       string  `json:"orderId"`
	Date          string  `json:"date"`
	Customer      string  `json:"customer"`
	Products      string  `json:"products"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	Status        string  `json:"status"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"finalAmount"`
}

// Pagination describes the report listing page window.
type Pagination struct {
	Page        int   `json:"page"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	NextPage    int   `json:"nextPage"`
	PrevPage    int   `json:"prevPage"`
	TotalOrders int64 `json:"totalOrders"`
}

// SalesReport is the machine-readable sales report listing payload.
type SalesReport struct {
	Orders       []OrderRow     `json:"orders"`
	Totals       ReportTotals   `json:"totals"`
	PaymentStats map[string]int `json:"paymentStats"`
	Period       string         `json:"period"`
	Status       string         `json:"status"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Pagination   Pagination     `json:"pagination"`
}
