package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all repository instances
type Repositories struct {
	Order    OrderRepository
	Product  ProductRepository
	Category CategoryRepository
	User     UserRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Order:    NewOrderRepository(db),
		Product:  NewProductRepository(db),
		Category: NewCategoryRepository(db),
		User:     NewUserRepository(db),
	}
}
