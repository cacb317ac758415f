// Package rediscache is an optional network-backed runstore.Store, for a
// research team sharing one cache across machines instead of each
// researcher keeping their own FileStore directory. It never takes the
// place of the file-backed store: the CLI wires whichever one is
// configured, and the engine never depends on this package directly.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ordbench/layerheur/pkg/runstore"
)

// Store is a runstore.Store backed by a Redis string per run, value JSON-encoded.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// Options configures a Store.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL is how long an entry survives before Redis evicts it; zero means
	// no expiration.
	TTL time.Duration
}

// New dials addr and returns a ready Store. It does not block waiting for
// the server to answer; the first Get/Put surfaces any connection error.
func New(opts Options) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &Store{client: client, ttl: opts.TTL}
}

// Ping verifies the connection is alive, for a CLI startup health check.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Get looks up a run by key. A miss (key absent) is reported as (zero, false, nil).
func (s *Store) Get(key string) (runstore.Run, bool, error) {
	ctx := context.Background()
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return runstore.Run{}, false, nil
	}
	if err != nil {
		return runstore.Run{}, false, fmt.Errorf("rediscache: get: %w", err)
	}
	var run runstore.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return runstore.Run{}, false, fmt.Errorf("rediscache: decode: %w", err)
	}
	return run, true, nil
}

// Put stores run under key, with the configured TTL if any.
func (s *Store) Put(key string, run runstore.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("rediscache: encode: %w", err)
	}
	if err := s.client.Set(context.Background(), key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("rediscache: set: %w", err)
	}
	return nil
}

// Close releases the underlying client's connections.
func (s *Store) Close() error { return s.client.Close() }

var _ runstore.Store = (*Store)(nil)
