package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora/admin-api/internal/models"
)

// ProductRepository reads the products collection for dimension joins.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

type mongoProductRepository struct {
	db *mongo.Database
}

// NewProductRepository creates a Mongo-backed product repository.
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{db: db}
}

func (r *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection("products").CountDocuments(ctx, bson.M{})
}

func (r *mongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.db.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
