package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"formapi/internal/config"
)

var mongoConnect = mongo.Connect

// NewMongo connects to the record store and verifies connectivity with a
// ping before returning. The returned client is the single long-lived
// handle for the process; the caller releases it with Disconnect at
// shutdown.
func NewMongo(ctx context.Context, c config.MongoConfig) (*mongo.Client, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}
	if c.Database == "" {
		return nil, fmt.Errorf("invalid mongo config: database name is required")
	}

	timeout := time.Duration(c.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(c.URI).
		SetConnectTimeout(timeout).
		SetMonitor(otelmongo.NewMonitor())

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongoConnect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify connectivity with a short timeout
	pingCtx, cancelPing := context.WithTimeout(ctx, timeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// Collection returns the submissions collection handle for the
// configured database.
func Collection(client *mongo.Client, c config.MongoConfig) *mongo.Collection {
	return client.Database(c.Database).Collection(c.Collection)
}
