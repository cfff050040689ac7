package controllers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"technocy-server/middleware"
	"technocy-server/models"
	"technocy-server/utils"
)

// PaymentController handles payment-intent creation, checkout and
// payment history
type PaymentController struct {
	PaymentCollection *mongo.Collection
	CartCollection    *mongo.Collection
	EmailService      *utils.EmailService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(db *mongo.Database, emailService *utils.EmailService) *PaymentController {
	return &PaymentController{
		PaymentCollection: db.Collection("payments"),
		CartCollection:    db.Collection("carts"),
		EmailService:      emailService,
	}
}

// MinorUnits converts a decimal price to integer minor currency units
// (cents for USD).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks Stripe for a payment intent over the posted
// price and returns its client secret
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(body.Price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Error().Err(err).Msg("payment intent creation failed")
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": intent.ClientSecret})
}

// CreatePayment records a payment, then deletes the cart rows it
// references. The two steps are independent operations with no
// transaction: a fault after the insert leaves the payment recorded
// and the cart rows behind.
func (pc *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	err := json.NewDecoder(r.Body).Decode(&payment)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	insertResult, err := pc.PaymentCollection.InsertOne(ctx, payment)
	if err != nil {
		http.Error(w, "Error recording payment", http.StatusInternalServerError)
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartIds))
	for _, hex := range payment.CartIds {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue
		}
		cartIDs = append(cartIDs, id)
	}

	deleteResult, err := pc.CartCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	if err := pc.EmailService.SendPaymentReceiptEmail(payment.Email, payment.TransactionID, payment.Price); err != nil {
		log.Error().Err(err).Str("email", payment.Email).Msg("receipt email failed")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"insertResult": insertResult,
		"deleteResult": deleteResult,
	})
}

// GetPaymentsByEmail lists the caller's payment history. The caller
// may only query their own email.
func (pc *PaymentController) GetPaymentsByEmail(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized-Access"})
		return
	}

	params := mux.Vars(r)
	email := params["email"]
	if email != claims.Email {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Forbidden-Access"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := pc.PaymentCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		http.Error(w, "Error fetching payments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		http.Error(w, "Error reading payments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
