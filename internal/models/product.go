package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the persisted product document. Brand is a plain name and
// Category references the categories collection; both are read at report
// time when resolving order-line dimensions.
type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Brand        string             `json:"brand" bson:"brand"`
	Category     primitive.ObjectID `json:"category" bson:"category"`
	RegularPrice float64            `json:"regularPrice" bson:"regularPrice"`
	SalePrice    float64            `json:"salePrice" bson:"salePrice"`
	IsListed     bool               `json:"isListed" bson:"isListed"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Category is the persisted category document.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	IsListed  bool               `json:"isListed" bson:"isListed"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
