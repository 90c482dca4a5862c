package database

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared with the web client's existing data.
const (
	UsersCollection    = "users"
	MenuCollection     = "menu"
	ReviewsCollection  = "reviews"
	CartCollection     = "cartItems"
	PaymentsCollection = "payments"
)

// DB wraps the process-wide Mongo client and the application database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB wraps an already connected client; used by InitDB and by tests.
func NewDB(client *mongo.Client, name string) *DB {
	return &DB{client: client, db: client.Database(name)}
}

func (d *DB) Users() *mongo.Collection    { return d.db.Collection(UsersCollection) }
func (d *DB) Menu() *mongo.Collection     { return d.db.Collection(MenuCollection) }
func (d *DB) Reviews() *mongo.Collection  { return d.db.Collection(ReviewsCollection) }
func (d *DB) Cart() *mongo.Collection     { return d.db.Collection(CartCollection) }
func (d *DB) Payments() *mongo.Collection { return d.db.Collection(PaymentsCollection) }

// Database exposes the underlying database, e.g. for dropping it in tests.
func (d *DB) Database() *mongo.Database {
	return d.db
}

// Ping checks the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// InitDB connects to MongoDB using the Stable API v1 and verifies the connection.
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(config.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		// nested profile fields decode as maps so they render as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return NewDB(client, config.Name), nil
}
