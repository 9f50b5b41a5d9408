package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trendora/admin-api/internal/analytics"
	"github.com/trendora/admin-api/internal/models"
	"github.com/trendora/admin-api/internal/repository"
)

// DashboardService assembles the admin dashboard feed. The lifetime totals,
// the windowed series and the rankings are independent reads against the
// same store, so they fan out concurrently and join before assembly; a
// failure in any branch aborts the whole report.
type DashboardService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository

	// now is swappable for tests
	now func() time.Time
}

// NewDashboardService creates the dashboard assembler.
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// GetDashboard computes the full dashboard payload for a symbolic time
// frame. The payload is recomputed from the store on every call; there is
// no cache and no partial result.
func (s *DashboardService) GetDashboard(ctx context.Context, timeFrame string) (*models.Dashboard, error) {
	window, granularity := analytics.ResolveWindow(timeFrame, s.now())

	var (
		totalSales    float64
		totalOrders   int64
		totalUsers    int64
		totalProducts int64
		delivered     []models.Order
		products      []models.Product
		categories    []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalSales, err = s.orderRepo.TotalDeliveredSales(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalOrders, err = s.orderRepo.Count(gctx, repository.OrderFilter{})
		return err
	})
	g.Go(func() (err error) {
		totalUsers, err = s.userRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalProducts, err = s.productRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		delivered, err = s.orderRepo.FindDelivered(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	productIndex := indexProducts(products)
	facts := buildOrderFacts(delivered, productIndex)

	series := analytics.Fill(
		analytics.Aggregate(facts, window, granularity, analytics.DimensionNone),
		analytics.Enumerate(window, granularity),
	)

	topProducts := make([]models.TopProduct, 0, analytics.TopLimit)
	for _, p := range analytics.TopByQuantity(
		analytics.GroupByDimension(facts, window, analytics.DimensionProduct), analytics.TopLimit) {
		topProducts = append(topProducts, models.TopProduct{
			ID:            p.Value,
			Name:          p.Name,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		})
	}

	topBrands := make([]models.TopBrand, 0, analytics.TopLimit)
	for _, p := range analytics.TopByRevenue(
		analytics.GroupByDimension(facts, window, analytics.DimensionBrand), analytics.TopLimit) {
		topBrands = append(topBrands, models.TopBrand{
			Name:          p.Name,
			TotalSales:    p.TotalRevenue,
			TotalQuantity: p.TotalQuantity,
		})
	}

	return &models.Dashboard{
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		SalesData:     series,
		CategoryData:  s.categoryBreakdown(categories, products, facts),
		TopProducts:   topProducts,
		TopBrands:     topBrands,
		TimeFrame:     timeFrame,
	}, nil
}

// categoryBreakdown joins every category to its product count and lifetime
// delivered sales. Categories without any sales still appear, zero-valued,
// and the list is ordered by sales descending.
func (s *DashboardService) categoryBreakdown(
	categories []models.Category,
	products []models.Product,
	facts []analytics.OrderFact,
) []models.CategoryStat {
	sales := make(map[string]analytics.AggregatedPoint)
	for _, p := range analytics.GroupByDimension(facts, analytics.Window{}, analytics.DimensionCategory) {
		sales[p.Value] = p
	}

	productCounts := make(map[string]int)
	for _, p := range products {
		productCounts[p.Category.Hex()]++
	}

	stats := make([]models.CategoryStat, 0, len(categories))
	for _, c := range categories {
		id := c.ID.Hex()
		stat := models.CategoryStat{
			ID:    id,
			Name:  c.Name,
			Count: productCounts[id],
		}
		if p, ok := sales[id]; ok {
			stat.TotalSales = p.TotalRevenue
			stat.TotalQuantity = p.TotalQuantity
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})
	return stats
}

// GetTopProducts returns the ten best selling products by quantity inside
// the resolved window.
func (s *DashboardService) GetTopProducts(ctx context.Context, timeFrame string) ([]models.TopProduct, error) {
	window, _ := analytics.ResolveWindow(timeFrame, s.now())

	facts, err := s.deliveredFacts(ctx)
	if err != nil {
		return nil, err
	}

	top := make([]models.TopProduct, 0, analytics.TopLimit)
	for _, p := range analytics.TopByQuantity(
		analytics.GroupByDimension(facts, window, analytics.DimensionProduct), analytics.TopLimit) {
		top = append(top, models.TopProduct{
			ID:            p.Value,
			Name:          p.Name,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		})
	}
	return top, nil
}

// GetTopBrands joins every brand in the catalogue to its product count and
// in-window units sold, ordered by units sold. Brands with no sales stay in
// the list with zero sales.
func (s *DashboardService) GetTopBrands(ctx context.Context, timeFrame string) ([]models.BrandSummary, error) {
	window, _ := analytics.ResolveWindow(timeFrame, s.now())

	var (
		delivered []models.Order
		products  []models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		delivered, err = s.orderRepo.FindDelivered(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	facts := buildOrderFacts(delivered, indexProducts(products))

	sold := make(map[string]int)
	for _, p := range analytics.GroupByDimension(facts, window, analytics.DimensionBrand) {
		sold[p.Value] = p.TotalQuantity
	}

	productCounts := make(map[string]int)
	var brandOrder []string
	for _, p := range products {
		if _, seen := productCounts[p.Brand]; !seen {
			brandOrder = append(brandOrder, p.Brand)
		}
		productCounts[p.Brand]++
	}

	summaries := make([]models.BrandSummary, 0, len(brandOrder))
	for _, brand := range brandOrder {
		summaries = append(summaries, models.BrandSummary{
			Name:         brand,
			ProductCount: productCounts[brand],
			Sales:        sold[brand],
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Sales > summaries[j].Sales
	})
	if len(summaries) > analytics.TopLimit {
		summaries = summaries[:analytics.TopLimit]
	}
	return summaries, nil
}

// GetTopCategories joins every category to its product count and lifetime
// units sold, ordered by units sold, top ten.
func (s *DashboardService) GetTopCategories(ctx context.Context) ([]models.TopCategory, error) {
	var (
		delivered  []models.Order
		products   []models.Product
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		delivered, err = s.orderRepo.FindDelivered(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	facts := buildOrderFacts(delivered, indexProducts(products))

	sold := make(map[string]int)
	for _, p := range analytics.GroupByDimension(facts, analytics.Window{}, analytics.DimensionCategory) {
		sold[p.Value] = p.TotalQuantity
	}

	productCounts := make(map[string]int)
	for _, p := range products {
		productCounts[p.Category.Hex()]++
	}

	top := make([]models.TopCategory, 0, len(categories))
	for _, c := range categories {
		id := c.ID.Hex()
		top = append(top, models.TopCategory{
			Name:         c.Name,
			ProductCount: productCounts[id],
			Sales:        sold[id],
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sales > top[j].Sales
	})
	if len(top) > analytics.TopLimit {
		top = top[:analytics.TopLimit]
	}
	return top, nil
}

// GetCategoryDistribution counts catalogue products per category.
func (s *DashboardService) GetCategoryDistribution(ctx context.Context) ([]models.CategoryShare, error) {
	var (
		products   []models.Product
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category.Hex()]++
	}

	shares := make([]models.CategoryShare, 0, len(categories))
	for _, c := range categories {
		if n := counts[c.ID.Hex()]; n > 0 {
			shares = append(shares, models.CategoryShare{CategoryName: c.Name, Count: n})
		}
	}
	return shares, nil
}

// GetLedger renders the ten most recent delivered orders as ledger rows.
func (s *DashboardService) GetLedger(ctx context.Context) ([]models.LedgerEntry, error) {
	orders, err := s.orderRepo.FindRecentDelivered(ctx, 10)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LedgerEntry, 0, len(orders))
	for _, order := range orders {
		entries = append(entries, models.LedgerEntry{
			Date:          order.CreatedAt.Format("Jan 2, 2006"),
			TransactionID: order.ID.Hex(),
			Description:   "Order Payment",
			Debit:         "0.00",
			Credit:        formatAmount(order.TotalPrice),
			Balance:       formatAmount(order.TotalPrice),
		})
	}
	return entries, nil
}

func (s *DashboardService) deliveredFacts(ctx context.Context) ([]analytics.OrderFact, error) {
	var (
		delivered []models.Order
		products  []models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		delivered, err = s.orderRepo.FindDelivered(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buildOrderFacts(delivered, indexProducts(products)), nil
}

func indexProducts(products []models.Product) map[string]models.Product {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ID.Hex()] = p
	}
	return index
}

// buildOrderFacts projects orders into aggregation facts, resolving brand
// and category from the current product record. Products edited after the
// order was placed therefore shift historical breakdowns; that matches the
// stored data, which keeps no brand/category snapshot on order lines.
func buildOrderFacts(orders []models.Order, products map[string]models.Product) []analytics.OrderFact {
	facts := make([]analytics.OrderFact, 0, len(orders))
	for _, order := range orders {
		fact := analytics.OrderFact{
			OrderID:   order.OrderID,
			CreatedAt: order.CreatedAt,
			Status:    order.Status,
			Lines:     make([]analytics.OrderLineFact, 0, len(order.OrderedItems)),
		}
		for _, item := range order.OrderedItems {
			line := analytics.OrderLineFact{
				ProductID:   item.Product.Hex(),
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.Price,
			}
			if p, ok := products[line.ProductID]; ok {
				line.Brand = p.Brand
				line.CategoryID = p.Category.Hex()
			}
			fact.Lines = append(fact.Lines, line)
		}
		facts = append(facts, fact)
	}
	return facts
}
