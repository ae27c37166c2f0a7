// Package store persists serialized graphs under string keys.
//
// A [Store] is an opaque byte sink and source: it never interprets the data
// it holds. Package io layers graph encoding on top of it.
//
// # Backends
//
//   - [FileStore]: one JSON file per key in a directory (CLI default)
//   - [MemoryStore]: in-process map, for tests and ephemeral servers
//   - [RedisStore]: Redis keys under a configurable prefix
//   - [MongoStore]: one document per key in a MongoDB collection
//
// [Open] builds a backend from a [Config] and wraps it so every operation is
// reported to the observability store hooks.
//
// All backends are safe for concurrent use.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/adjgraph/pkg/observability"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is a durable key-value store for serialized graphs.
type Store interface {
	// Get returns the data stored under key. ok is false when the key does
	// not exist; that is not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Put stores data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key in ascending order.
	List(ctx context.Context) ([]string, error)

	// Close releases the backend's resources.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend string
	Dir     string // FileStore directory
	Redis   RedisConfig
	Mongo   MongoConfig
}

// Open creates the backend named by cfg.Backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case BackendFile, "":
		s, err = NewFileStore(cfg.Dir)
	case BackendMemory:
		s = NewMemoryStore()
	case BackendRedis:
		s, err = NewRedisStore(ctx, cfg.Redis)
	case BackendMongo:
		s, err = NewMongoStore(ctx, cfg.Mongo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	backend := cfg.Backend
	if backend == "" {
		backend = BackendFile
	}
	return Instrument(s, backend), nil
}

// NewKey returns a fresh random key.
func NewKey() string { return uuid.NewString() }

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// instrumented reports every operation of the wrapped store to the
// observability store hooks.
type instrumented struct {
	Store
	backend string
}

// Instrument wraps s so its operations are reported to
// observability.Store() under the given backend name.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

func (s *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	data, ok, err := s.Store.Get(ctx, key)
	observability.Store().OnGet(ctx, s.backend, key, ok, time.Since(start), err)
	return data, ok, err
}

func (s *instrumented) Put(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := s.Store.Put(ctx, key, data)
	observability.Store().OnPut(ctx, s.backend, key, len(data), time.Since(start), err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.Store.Delete(ctx, key)
	observability.Store().OnDelete(ctx, s.backend, key, time.Since(start), err)
	return err
}
