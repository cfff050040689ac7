package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"

	"technocy-server/config"
	"technocy-server/controllers"
	"technocy-server/middleware"
	"technocy-server/routes"
	"technocy-server/utils"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, proceeding with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Set the JWT secret and the Stripe API key
	utils.JwtKey = []byte(cfg.JWTSecret)
	stripe.Key = cfg.StripeSecretKey

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()
	db := client.Database(cfg.DBName)

	// Initialize controllers
	authController := controllers.NewAuthController()
	categoryController := controllers.NewCategoryController(db)
	productController := controllers.NewProductController(db)
	reviewController := controllers.NewReviewController(db)
	userController := controllers.NewUserController(db)
	cartController := controllers.NewCartController(db)
	paymentController := controllers.NewPaymentController(db, emailService)
	analyticsController := controllers.NewAnalyticsController(db)

	// Set up the router
	router := mux.NewRouter()
	isAdmin := middleware.MongoRoleChecker(db.Collection("users"))
	routes.RegisterRoutes(router, isAdmin,
		authController, categoryController, productController, reviewController,
		userController, cartController, paymentController, analyticsController)

	// Start the server
	log.Info().Str("port", cfg.Port).Msg("technocy resources server is running")
	if err := http.ListenAndServe(":"+cfg.Port, routes.CORS()(router)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
