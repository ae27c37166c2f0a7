package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[generate]
nodes = 25
seed = 7

[output]
path = "out.json"

[store]
backend = "Redis"

[store.redis]
addr = "cache:6379"
db = 2

[server]
addr = ":9000"
max_nodes = 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Generate.Nodes)
	assert.Equal(t, uint64(7), cfg.Generate.Seed)
	assert.Equal(t, "out.json", cfg.Output.Path)
	assert.Equal(t, store.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, store.DefaultRedisPrefix, cfg.Store.Redis.Prefix)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 500, cfg.Server.MaxNodes)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, defaultNodes, cfg.Generate.Nodes)
	assert.Zero(t, cfg.Generate.Seed)
	assert.Equal(t, defaultOutputPath, cfg.Output.Path)
	assert.Equal(t, store.BackendFile, cfg.Store.Backend)
	assert.Equal(t, defaultMongoURI, cfg.Store.Mongo.URI)
	assert.Equal(t, store.DefaultMongoDatabase, cfg.Store.Mongo.Database)
	assert.Equal(t, store.DefaultMongoCollection, cfg.Store.Mongo.Collection)
	assert.Equal(t, defaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, defaultMaxNodes, cfg.Server.MaxNodes)
}

func TestParseEmptyMatchesDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadOrDefault(writeConfig(t, "[generate]\nnodes = 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Generate.Nodes)
}

func TestParseKeepsExplicitZeroNodes(t *testing.T) {
	cfg, err := Parse([]byte("[generate]\nnodes = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Generate.Nodes)

	cfg, err = Parse([]byte("[generate]\nseed = 7\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultNodes, cfg.Generate.Nodes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsIO(err))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[generate\nnodes = 1"},
		{"wrong type", "[generate]\nnodes = \"many\""},
		{"negative nodes", "[generate]\nnodes = -1"},
		{"unknown backend", "[store]\nbackend = \"sqlite\""},
		{"negative redis db", "[store.redis]\ndb = -1"},
		{"negative max nodes", "[server]\nmax_nodes = -5"},
		{"unknown key", "[generate]\nnodez = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestRelativeStoreDirIsResolved(t *testing.T) {
	cfg, err := Parse([]byte("[store]\ndir = \"graphs\"\n"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Store.Dir))
	assert.Equal(t, "graphs", filepath.Base(cfg.Store.Dir))
}

func TestStoreConfig(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = store.BackendMongo
	cfg.Store.Mongo.Collection = "custom"

	sc := cfg.StoreConfig()
	assert.Equal(t, store.BackendMongo, sc.Backend)
	assert.Equal(t, "custom", sc.Mongo.Collection)
	assert.Equal(t, defaultRedisAddr, sc.Redis.Addr)
}
