package routes

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"technocy-server/controllers"
	"technocy-server/middleware"
)

// CORS returns the cross-origin middleware wrapped around the whole
// router: any origin, the methods the route table registers, and the
// headers the guards and handlers read.
func CORS() func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	isAdmin middleware.RoleChecker,
	authController *controllers.AuthController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	reviewController *controllers.ReviewController,
	userController *controllers.UserController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	analyticsController *controllers.AnalyticsController,
) {
	adminVerify := middleware.AdminVerify(isAdmin)
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.TokenVerify(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.TokenVerify(adminVerify(h))
	}

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("technocy resources server is running"))
	}).Methods("GET")

	// JWT
	router.HandleFunc("/jwt", authController.IssueToken).Methods("POST")

	// Category routes
	router.HandleFunc("/category", categoryController.GetCategories).Methods("GET")
	router.Handle("/category", adminOnly(categoryController.CreateCategory)).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	router.HandleFunc("/products/category/{category}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.Handle("/products/{id}", adminOnly(productController.UpdateProduct)).Methods("PATCH")
	router.Handle("/products/{id}", adminOnly(productController.DeleteProduct)).Methods("DELETE")

	// Review routes
	router.HandleFunc("/reviews", reviewController.GetReviews).Methods("GET")
	router.Handle("/reviews", protected(reviewController.CreateReview)).Methods("POST")

	// User routes
	router.Handle("/users", adminOnly(userController.GetUsers)).Methods("GET")
	router.Handle("/users/admin/{email}", protected(userController.CheckAdmin)).Methods("GET")
	router.HandleFunc("/users", userController.CreateUser).Methods("POST")
	router.Handle("/users/admin/{id}", adminOnly(userController.MakeAdmin)).Methods("PATCH")
	router.Handle("/users/{id}", adminOnly(userController.DeleteUser)).Methods("DELETE")

	// Cart routes
	router.HandleFunc("/carts", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/carts", cartController.GetCart).Methods("GET")
	router.HandleFunc("/carts/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// Payment routes
	router.Handle("/create-payment-intent", protected(paymentController.CreatePaymentIntent)).Methods("POST")
	router.Handle("/payments", protected(paymentController.CreatePayment)).Methods("POST")
	router.Handle("/payments/{email}", protected(paymentController.GetPaymentsByEmail)).Methods("GET")

	// Analytics routes
	router.Handle("/admin-home-page", adminOnly(analyticsController.AdminHomePage)).Methods("GET")
	router.Handle("/order-stats", adminOnly(analyticsController.OrderStats)).Methods("GET")
}
