package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted customer document. Only the fields the reporting
// surface reads are mapped here; account management lives elsewhere.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	IsBlocked bool               `json:"isBlocked" bson:"isBlocked"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
