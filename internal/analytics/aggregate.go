package analytics

import (
	"sort"
	"time"

	"github.com/trendora/admin-api/internal/models"
)

// Dimension selects the grouping axis for an aggregation.
type Dimension int

const (
	DimensionNone Dimension = iota
	DimensionProduct
	DimensionBrand
	DimensionCategory
)

// OrderLineFact is one order line flattened for aggregation. Brand and
// CategoryID are resolved from the live product record when the fact is
// built, so historical reports follow later product edits; ProductName is
// the snapshot taken at order time.
type OrderLineFact struct {
	ProductID   string
	ProductName string
	Brand       string
	CategoryID  string
	Quantity    int
	UnitPrice   float64
}

// Revenue is the line total.
func (l OrderLineFact) Revenue() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// OrderFact is an immutable projection of an order for aggregation.
type OrderFact struct {
	OrderID   string
	CreatedAt time.Time
	Status    models.OrderStatus
	Lines     []OrderLineFact
}

// AggregatedPoint is one merged group: all delivered lines sharing a bucket
// and a dimension value, with their quantity and revenue summed. For a
// fixed (bucket, dimension value) pair at most one point exists.
type AggregatedPoint struct {
	Bucket        BucketKey
	Value         string
	Name          string
	TotalQuantity int
	TotalRevenue  float64
}

func dimensionValue(line OrderLineFact, dim Dimension) (value, name string) {
	switch dim {
	case DimensionProduct:
		return line.ProductID, line.ProductName
	case DimensionBrand:
		return line.Brand, line.Brand
	case DimensionCategory:
		return line.CategoryID, line.CategoryID
	default:
		return "", ""
	}
}

type groupKey struct {
	bucket BucketKey
	value  string
}

// Aggregate filters facts to delivered orders inside the window, flattens
// them into lines and merges sums keyed by (bucket, dimension value).
// Lines with an empty value for the grouping dimension, such as ones whose
// product record was deleted, are excluded from dimensioned output.
// Points come back in discovery order; grouping is commutative so input
// order only affects that discovery order, never the sums.
func Aggregate(facts []OrderFact, w Window, g Granularity, dim Dimension) []AggregatedPoint {
	var points []AggregatedPoint
	index := make(map[groupKey]int)

	for _, fact := range facts {
		if fact.Status != models.StatusDelivered || !w.Contains(fact.CreatedAt) {
			continue
		}
		bucket := BucketOf(fact.CreatedAt, g)
		for _, line := range fact.Lines {
			value, name := dimensionValue(line, dim)
			if dim != DimensionNone && value == "" {
				// The line no longer resolves to a product record.
				continue
			}
			key := groupKey{bucket: bucket, value: value}
			i, ok := index[key]
			if !ok {
				i = len(points)
				index[key] = i
				points = append(points, AggregatedPoint{Bucket: bucket, Value: value, Name: name})
			}
			points[i].TotalQuantity += line.Quantity
			points[i].TotalRevenue += line.Revenue()
		}
	}

	return points
}

// GroupByDimension merges delivered in-window lines by dimension value
// alone, ignoring buckets. Used for rankings and breakdowns. Lines with an
// empty dimension value are excluded, as in Aggregate.
func GroupByDimension(facts []OrderFact, w Window, dim Dimension) []AggregatedPoint {
	var points []AggregatedPoint
	index := make(map[string]int)

	for _, fact := range facts {
		if fact.Status != models.StatusDelivered || !w.Contains(fact.CreatedAt) {
			continue
		}
		for _, line := range fact.Lines {
			value, name := dimensionValue(line, dim)
			if dim != DimensionNone && value == "" {
				continue
			}
			i, ok := index[value]
			if !ok {
				i = len(points)
				index[value] = i
				points = append(points, AggregatedPoint{Value: value, Name: name})
			}
			points[i].TotalQuantity += line.Quantity
			points[i].TotalRevenue += line.Revenue()
		}
	}

	return points
}

// TopLimit is the ranking cutoff used by all top-N feeds.
const TopLimit = 10

// TopByQuantity sorts points descending by quantity sold and keeps at most
// limit entries. Ties keep their discovery order.
func TopByQuantity(points []AggregatedPoint, limit int) []AggregatedPoint {
	ranked := make([]AggregatedPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalQuantity > ranked[j].TotalQuantity
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopByRevenue sorts points descending by revenue and keeps at most limit
// entries. Ties keep their discovery order.
func TopByRevenue(points []AggregatedPoint, limit int) []AggregatedPoint {
	ranked := make([]AggregatedPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
