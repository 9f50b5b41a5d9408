package models

// SeriesPoint is one gap-filled entry of the dashboard sales chart. Date is
// the calendar-day anchor of the bucket formatted as 2006-01-02.
type SeriesPoint struct {
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	ProductCount int     `json:"productCount"`
}

// TopProduct is a top-N ranking entry for products, ordered by quantity sold.
type TopProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// TopBrand is a top-N ranking entry for brands, ordered by sales amount.
type TopBrand struct {
	Name          string  `json:"name"`
	TotalSales    float64 `json:"totalSales"`
	TotalQuantity int     `json:"totalQuantity"`
}

// TopCategory is a ranking entry joining a category to its product count and
// delivered sales. Categories with no sales appear with zero values.
type TopCategory struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
	Sales        int    `json:"sales"`
}

// BrandSummary joins a brand to its catalogue size and delivered sales.
// Brands with no sales appear with zero values.
type BrandSummary struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
	Sales        int    `json:"sales"`
}

// CategoryStat is the dashboard category breakdown entry.
type CategoryStat struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	TotalSales    float64 `json:"totalSales"`
	TotalQuantity int     `json:"totalQuantity"`
}

// CategoryShare is one slice of the category distribution (products per
// category).
type CategoryShare struct {
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// LedgerEntry is a recent delivered order rendered as a ledger row.
type LedgerEntry struct {
	Date          string `json:"date"`
	TransactionID string `json:"transactionId"`
	Description   string `json:"description"`
	Debit         string `json:"debit"`
	Credit        string `json:"credit"`
	Balance       string `json:"balance"`
}

// Dashboard is the full dashboard feed payload. Field names are part of the
// client contract and must not change.
type Dashboard struct {
	TotalSales    float64        `json:"totalSales"`
	TotalOrders   int64          `json:"totalOrders"`
	TotalUsers    int64          `json:"totalUsers"`
	TotalProducts int64          `json:"totalProducts"`
	SalesData     []SeriesPoint  `json:"salesData"`
	CategoryData  []CategoryStat `json:"categoryData"`
	TopProducts   []TopProduct   `json:"topProducts"`
	TopBrands     []TopBrand     `json:"topBrands"`
	TimeFrame     string         `json:"timeFrame"`
}
