package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one entry in a user's cart. Name, price and image are a
// snapshot of the product at add-to-cart time.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
}
