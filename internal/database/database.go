// Package database owns the process-wide Mongo handle. The connection is
// established lazily on first use and cached for the process lifetime;
// concurrent requests arriving before the first dial completes all wait on
// the same in-flight attempt instead of racing to open duplicates. A failed
// attempt caches nothing, so the next request retries.
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrUnreachable wraps any dial or ping failure so handlers can map it to a
// 503 instead of a generic 500.
var ErrUnreachable = errors.New("database unreachable")

const serverSelectionTimeout = 5 * time.Second

// Mongo is the lazily initialized connection cache.
type Mongo struct {
	uri    string
	name   string
	logger *zap.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database

	group singleflight.Group
}

// New prepares the handle without dialing. uri must be non-empty (validated
// by config at startup).
func New(uri, name string, logger *zap.Logger) *Mongo {
	return &Mongo{uri: uri, name: name, logger: logger}
}

// Get returns the cached database, dialing on first use.
func (m *Mongo) Get(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		return m.connect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Database), nil
}

func (m *Mongo) connect(ctx context.Context) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(m.uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	db := client.Database(m.name)

	m.mu.Lock()
	m.client = client
	m.db = db
	m.mu.Unlock()

	m.logger.Info("mongo connected", zap.String("database", m.name))
	return db, nil
}

// Connected reports whether the handle has been established. Used by /health;
// it never triggers a dial.
func (m *Mongo) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db != nil
}

// Disconnect tears down the cached client on shutdown.
func (m *Mongo) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.db = nil
	m.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
