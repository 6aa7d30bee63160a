package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formapi/internal/config"
)

func TestNewMongo_ConfigValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		config  config.MongoConfig
		wantMsg string
	}{
		{
			name:    "missing uri",
			config:  config.MongoConfig{Database: "forms"},
			wantMsg: "uri is required",
		},
		{
			name:    "missing database",
			config:  config.MongoConfig{URI: "mongodb://localhost:27017"},
			wantMsg: "database name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewMongo(ctx, tt.config)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, client)
		})
	}
}

func TestNewMongo_ConnectError(t *testing.T) {
	conf := config.MongoConfig{
		URI:               "mongodb://localhost:27017",
		Database:          "forms",
		ConnectTimeoutSec: 1,
	}

	// Mock mongoConnect to return an error
	origConnect := mongoConnect
	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
		return nil, errors.New("connect refused")
	}
	defer func() { mongoConnect = origConnect }()

	client, err := NewMongo(context.Background(), conf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mongo connect: connect refused")
	assert.Nil(t, client)
}
