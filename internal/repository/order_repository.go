package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendora/admin-api/internal/models"
)

// OrderFilter narrows order queries by status and creation time. Zero-value
// fields are not applied.
type OrderFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

func (f OrderFilter) toBSON() bson.M {
	query := bson.M{}
	if f.Status != "" && f.Status != "all" {
		query["status"] = f.Status
	}
	created := bson.M{}
	if f.From != nil {
		created["$gte"] = *f.From
	}
	if f.To != nil {
		created["$lte"] = *f.To
	}
	if len(created) > 0 {
		query["createdAt"] = created
	}
	return query
}

// OrderRepository reads the orders collection. The analytics engine never
// writes; order mutation belongs to the storefront.
type OrderRepository interface {
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	FindPage(ctx context.Context, filter OrderFilter, skip, limit int64) ([]models.Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	FindDelivered(ctx context.Context) ([]models.Order, error)
	FindRecentDelivered(ctx context.Context, limit int64) ([]models.Order, error)
	TotalDeliveredSales(ctx context.Context) (float64, error)
}

type mongoOrderRepository struct {
	db *mongo.Database
}

// NewOrderRepository creates a Mongo-backed order repository.
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{db: db}
}

func (r *mongoOrderRepository) collection() *mongo.Collection {
	return r.db.Collection("orders")
}

func (r *mongoOrderRepository) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	return r.collection().CountDocuments(ctx, filter.toBSON())
}

func (r *mongoOrderRepository) FindPage(ctx context.Context, filter OrderFilter, skip, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(skip).
		SetLimit(limit)
	return r.find(ctx, filter.toBSON(), opts)
}

func (r *mongoOrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.find(ctx, filter.toBSON(), opts)
}

func (r *mongoOrderRepository) FindDelivered(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{"status": models.StatusDelivered}, options.Find())
}

func (r *mongoOrderRepository) FindRecentDelivered(ctx context.Context, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)
	return r.find(ctx, bson.M{"status": models.StatusDelivered}, opts)
}

func (r *mongoOrderRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Order, error) {
	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// TotalDeliveredSales sums totalPrice over delivered orders server-side.
func (r *mongoOrderRepository) TotalDeliveredSales(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.StatusDelivered}},
		{"$group": bson.M{"_id": nil, "totalSales": bson.M{"$sum": "$totalPrice"}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalSales float64 `bson:"totalSales"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalSales, nil
}
