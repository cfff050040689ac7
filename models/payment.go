package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. Payments are immutable once
// written; CartIds and ProductItemIds keep the purchased ids as hex
// strings, converted back to ObjectIDs when the analytics pipeline
// joins against products.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Price          float64            `bson:"price" json:"price"`
	TransactionID  string             `bson:"transactionId" json:"transactionId"`
	CartIds        []string           `bson:"cartIds" json:"cartIds"`
	ProductItemIds []string           `bson:"productItemIds" json:"productItemIds"`
	Date           time.Time          `bson:"date" json:"date"`
	Status         string             `bson:"status" json:"status"`
}
