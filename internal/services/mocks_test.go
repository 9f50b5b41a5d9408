package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trendora/admin-api/internal/models"
	"github.com/trendora/admin-api/internal/repository"
)

// Mock OrderRepository
type mockOrderRepository struct {
	orders     []models.Order
	totalSales float64

	mockFindAll  func(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error)
	mockFindPage func(ctx context.Context, filter repository.OrderFilter, skip, limit int64) ([]models.Order, error)
}

func (m *mockOrderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockOrderRepository) FindPage(ctx context.Context, filter repository.OrderFilter, skip, limit int64) ([]models.Order, error) {
	if m.mockFindPage != nil {
		return m.mockFindPage(ctx, filter, skip, limit)
	}
	if skip >= int64(len(m.orders)) {
		return nil, nil
	}
	end := skip + limit
	if end > int64(len(m.orders)) {
		end = int64(len(m.orders))
	}
	return m.orders[skip:end], nil
}

func (m *mockOrderRepository) FindAll(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx, filter)
	}
	return m.orders, nil
}

func (m *mockOrderRepository) FindDelivered(ctx context.Context) ([]models.Order, error) {
	var delivered []models.Order
	for _, o := range m.orders {
		if o.Status == models.StatusDelivered {
			delivered = append(delivered, o)
		}
	}
	return delivered, nil
}

func (m *mockOrderRepository) FindRecentDelivered(ctx context.Context, limit int64) ([]models.Order, error) {
	delivered, _ := m.FindDelivered(ctx)
	if int64(len(delivered)) > limit {
		delivered = delivered[:limit]
	}
	return delivered, nil
}

func (m *mockOrderRepository) TotalDeliveredSales(ctx context.Context) (float64, error) {
	return m.totalSales, nil
}

// Mock ProductRepository
type mockProductRepository struct {
	products []models.Product
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return m.products, nil
}

// Mock CategoryRepository
type mockCategoryRepository struct {
	categories []models.Category
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

// Mock UserRepository
type mockUserRepository struct {
	users map[primitive.ObjectID]string
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepository) FindNamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	for _, id := range ids {
		if name, ok := m.users[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}
