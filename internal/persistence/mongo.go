package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/trimkart/task-tracker/internal/config"
)

// Mongo wraps access to the shared document store client.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	cfg      config.MongoConfig
}

// NewMongo establishes a client against the configured store. Connection problems
// are logged rather than fatal so the diagnostic endpoint can report them as data.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	m := &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
		cfg:      cfg,
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.PingTimeout())
	defer cancelPing()
	if err := m.Ping(pingCtx); err != nil {
		logger.Warn("unable to reach document store", zap.Error(err))
	} else {
		logger.Info("connected to document store", zap.String("database", cfg.Database))
	}

	return m, nil
}

// Ping verifies store connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("document store client not configured")
	}
	return m.Client.Ping(ctx, nil)
}

// DatabaseName returns the configured database name.
func (m *Mongo) DatabaseName() string {
	if m == nil {
		return ""
	}
	return m.cfg.Database
}

// CollectionNames lists collection names in the database, capped at limit.
func (m *Mongo) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if m == nil || m.Database == nil {
		return nil, errors.New("document store client not configured")
	}
	names, err := m.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// DatabaseHandle returns the underlying database for repository construction.
func (m *Mongo) DatabaseHandle() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.Database
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}
