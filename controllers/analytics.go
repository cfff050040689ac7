package controllers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsController derives aggregate business metrics from the
// stored collections. All operations are read-only.
type AnalyticsController struct {
	UserCollection     *mongo.Collection
	ProductCollection  *mongo.Collection
	PaymentCollection  *mongo.Collection
	CategoryCollection *mongo.Collection
	ReviewCollection   *mongo.Collection
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *mongo.Database) *AnalyticsController {
	return &AnalyticsController{
		UserCollection:     db.Collection("users"),
		ProductCollection:  db.Collection("products"),
		PaymentCollection:  db.Collection("payments"),
		CategoryCollection: db.Collection("category"),
		ReviewCollection:   db.Collection("reviews"),
	}
}

// RoundToCents rounds a monetary value to two decimal places
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OrderStat is one per-category row of the order statistics report
type OrderStat struct {
	Category      string  `bson:"category" json:"category"`
	TotalQuantity int64   `bson:"totalQuantity" json:"totalQuantity"`
	TotalPrice    float64 `bson:"totalPrice" json:"totalPrice"`
}

// orderStatsPipeline expands each payment into one row per purchased
// item occurrence, joins the row to its product by id and groups by
// product category. Ids that resolve to no product drop out at the
// second unwind; malformed ids convert to null and drop the same way.
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$productItemIds"}},
		{{Key: "$set", Value: bson.M{
			"productObjectId": bson.M{"$convert": bson.M{
				"input":   "$productItemIds",
				"to":      "objectId",
				"onError": nil,
			}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "productObjectId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$product.category",
			"totalQuantity": bson.M{"$sum": 1},
			"totalPrice":    bson.M{"$sum": "$product.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"category":      "$_id",
			"totalQuantity": 1,
			"totalPrice":    1,
		}}},
	}
}

// earningsPipeline sums the price of every payment into one bucket
func earningsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}
}

// AdminHomePage returns the home-page summary: cardinality counts per
// collection plus total earnings (Admin only)
func (ac *AnalyticsController) AdminHomePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := ac.UserCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting users", http.StatusInternalServerError)
		return
	}
	products, err := ac.ProductCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting products", http.StatusInternalServerError)
		return
	}
	payments, err := ac.PaymentCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting payments", http.StatusInternalServerError)
		return
	}
	categories, err := ac.CategoryCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting categories", http.StatusInternalServerError)
		return
	}
	reviews, err := ac.ReviewCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting reviews", http.StatusInternalServerError)
		return
	}

	cursor, err := ac.PaymentCollection.Aggregate(ctx, earningsPipeline())
	if err != nil {
		http.Error(w, "Error computing earnings", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		http.Error(w, "Error reading earnings", http.StatusInternalServerError)
		return
	}

	earnings := 0.0
	if len(buckets) > 0 {
		earnings = RoundToCents(buckets[0].Total)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"users":      users,
		"products":   products,
		"payments":   payments,
		"categories": categories,
		"reviews":    reviews,
		"earnings":   earnings,
	})
}

// OrderStats returns per-category order statistics over the full
// payment history (Admin only). Row order is whatever the server
// produced.
func (ac *AnalyticsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := ac.PaymentCollection.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		http.Error(w, "Error computing order stats", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	stats := []OrderStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		http.Error(w, "Error reading order stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
