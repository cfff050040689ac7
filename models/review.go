package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer review. Reviews are append-only.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}
