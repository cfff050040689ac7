package utils

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDB builds the shared MongoDB client. A failed ping is logged
// but does not abort startup; requests fail individually until the
// database becomes reachable.
func ConnectDB(uri string) *mongo.Client {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid MongoDB client options")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("MongoDB ping failed, continuing without a verified connection")
		return client
	}

	log.Info().Msg("connected to MongoDB")
	return client
}
