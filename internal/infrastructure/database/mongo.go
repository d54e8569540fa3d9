package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollectionUsers         = "users"
	CollectionAssessments   = "assessments"
	CollectionConsultations = "consultation_requests"
	CollectionAppointments  = "appointments"
	CollectionMessages      = "messages"
	CollectionContents      = "contents"
	CollectionCategories    = "categories"
	CollectionBranding      = "branding"
	CollectionMedia         = "media"
	CollectionTokens        = "tokens"
	MediaBucket             = "media_files"
)

// MongoDBClient wraps a connected client and the application database.
type MongoDBClient struct {
	Client  *mongo.Client
	DB      *mongo.Database
	timeout time.Duration
}

// NewMongoDBClient connects and pings the server before returning.
func NewMongoDBClient(ctx context.Context, uri, dbName string, timeout time.Duration) (*MongoDBClient, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoDBClient{Client: client, DB: client.Database(dbName), timeout: timeout}, nil
}

func (m *MongoDBClient) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

// Ping is used by the health endpoint.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *MongoDBClient) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
