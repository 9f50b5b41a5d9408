package analytics

import "github.com/trendora/admin-api/internal/models"

// Fill merges sparse aggregation output with the full enumerated bucket
// sequence, producing exactly one series point per period. Periods without
// activity get zero values. Matching uses full bucket key equality, so the
// same week or month number in different years never collides.
func Fill(points []AggregatedPoint, sequence []BucketPeriod) []models.SeriesPoint {
	byBucket := make(map[BucketKey]AggregatedPoint, len(points))
	for _, p := range points {
		byBucket[p.Bucket] = p
	}

	series := make([]models.SeriesPoint, 0, len(sequence))
	for _, period := range sequence {
		sp := models.SeriesPoint{Date: period.Start.Format("2006-01-02")}
		if p, ok := byBucket[period.Key]; ok {
			sp.Amount = p.TotalRevenue
			sp.ProductCount = p.TotalQuantity
		}
		series = append(series, sp)
	}

	return series
}
