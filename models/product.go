package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item in the catalog
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Details  string             `bson:"details" json:"details"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
}
