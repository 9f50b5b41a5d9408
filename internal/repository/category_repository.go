package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora/admin-api/internal/models"
)

// CategoryRepository reads the categories collection.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

type mongoCategoryRepository struct {
	db *mongo.Database
}

// NewCategoryRepository creates a Mongo-backed category repository.
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{db: db}
}

func (r *mongoCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
