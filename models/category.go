package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a label products are grouped under
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
