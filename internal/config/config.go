// Package config loads adjgraph settings from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// FileName is the name of the config file inside the config directory.
const FileName = "adjgraph.toml"

const (
	defaultNodes      = 100
	defaultOutputPath = "graph.json"
	defaultRedisAddr  = "localhost:6379"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultServerAddr = "127.0.0.1:8080"
	defaultMaxNodes   = 2000
)

// Config is the decoded configuration file.
type Config struct {
	Generate Generate `toml:"generate"`
	Output   Output   `toml:"output"`
	Store    Store    `toml:"store"`
	Server   Server   `toml:"server"`
}

// Generate holds defaults for the generate and run commands. A zero Seed
// means a time-based seed. Nodes defaults to 100 only when the key is absent;
// an explicit 0 is kept.
type Generate struct {
	Nodes int    `toml:"nodes"`
	Seed  uint64 `toml:"seed"`
}

type Output struct {
	Path string `toml:"path"`
}

type Store struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Redis   Redis  `toml:"redis"`
	Mongo   Mongo  `toml:"mongo"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type Server struct {
	Addr     string `toml:"addr"`
	MaxNodes int    `toml:"max_nodes"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg, toml.MetaData{})
	return &cfg
}

// Load reads, defaults and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but returns the defaults when path does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes TOML content and applies defaults and validation.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	applyDefaults(&cfg, md)

	if err := validateGenerate(&cfg); err != nil {
		return nil, err
	}
	if err := validateStore(&cfg); err != nil {
		return nil, err
	}
	if err := validateServer(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config, md toml.MetaData) {
	if !md.IsDefined("generate", "nodes") {
		cfg.Generate.Nodes = defaultNodes
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		cfg.Output.Path = defaultOutputPath
	}

	if strings.TrimSpace(cfg.Store.Backend) == "" {
		cfg.Store.Backend = store.BackendFile
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if strings.TrimSpace(cfg.Store.Redis.Addr) == "" {
		cfg.Store.Redis.Addr = defaultRedisAddr
	}
	if cfg.Store.Redis.Prefix == "" {
		cfg.Store.Redis.Prefix = store.DefaultRedisPrefix
	}
	if strings.TrimSpace(cfg.Store.Mongo.URI) == "" {
		cfg.Store.Mongo.URI = defaultMongoURI
	}
	if strings.TrimSpace(cfg.Store.Mongo.Database) == "" {
		cfg.Store.Mongo.Database = store.DefaultMongoDatabase
	}
	if strings.TrimSpace(cfg.Store.Mongo.Collection) == "" {
		cfg.Store.Mongo.Collection = store.DefaultMongoCollection
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = defaultServerAddr
	}
	if cfg.Server.MaxNodes == 0 {
		cfg.Server.MaxNodes = defaultMaxNodes
	}
}

func validateGenerate(cfg *Config) error {
	if cfg.Generate.Nodes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "generate.nodes must not be negative, got %d", cfg.Generate.Nodes)
	}
	return nil
}

func validateStore(cfg *Config) error {
	switch cfg.Store.Backend {
	case store.BackendFile, store.BackendMemory, store.BackendRedis, store.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "store.backend %q is not one of file, memory, redis, mongo", cfg.Store.Backend)
	}
	if cfg.Store.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "store.redis.db must not be negative")
	}
	if cfg.Store.Dir != "" && !filepath.IsAbs(cfg.Store.Dir) {
		abs, err := filepath.Abs(cfg.Store.Dir)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "store.dir")
		}
		cfg.Store.Dir = abs
	}
	return nil
}

func validateServer(cfg *Config) error {
	if cfg.Server.MaxNodes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_nodes must not be negative")
	}
	return nil
}

// StoreConfig converts the [store] section for store.Open.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Backend: c.Store.Backend,
		Dir:     c.Store.Dir,
		Redis: store.RedisConfig{
			Addr:     c.Store.Redis.Addr,
			Password: c.Store.Redis.Password,
			DB:       c.Store.Redis.DB,
			Prefix:   c.Store.Redis.Prefix,
		},
		Mongo: store.MongoConfig{
			URI:        c.Store.Mongo.URI,
			Database:   c.Store.Mongo.Database,
			Collection: c.Store.Mongo.Collection,
		},
	}
}
