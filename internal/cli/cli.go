// Package cli implements the adjgraph command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adjgraph/internal/config"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "adjgraph"

	// graphsDirName is the FileStore directory below the data directory.
	graphsDirName = "graphs"

	// successMessage is printed by run once the round-trip completes.
	successMessage = "Successfully generated, serialized and loaded graph"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
	now        func() time.Time
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		now:    time.Now,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the file named by --config, or the default config file
// when the flag is empty. Only an explicit path must exist.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		return nil
	}

	dir, err := configDir()
	if err != nil {
		c.cfg = config.Default()
		return nil
	}
	cfg, err := config.LoadOrDefault(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// settings returns the loaded configuration, or the defaults before loading.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// seed returns configured when non-zero and a time-based seed otherwise.
func (c *CLI) seed(configured uint64) uint64 {
	if configured != 0 {
		return configured
	}
	return uint64(c.now().UnixNano())
}

// =============================================================================
// Store Factory
// =============================================================================

// openStore opens the configured store backend. The file backend defaults to
// the graphs directory under the XDG data home.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	sc := c.settings().StoreConfig()
	if (sc.Backend == store.BackendFile || sc.Backend == "") && sc.Dir == "" {
		dir, err := storeDir()
		if err != nil {
			return nil, err
		}
		sc.Dir = dir
	}
	c.Logger.Debug("opening store", "backend", sc.Backend, "dir", sc.Dir)
	return store.Open(ctx, sc)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/adjgraph/).
func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// dataDir returns the data directory using XDG standard (~/.local/share/adjgraph/).
func dataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// storeDir returns the default FileStore directory.
func storeDir() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, graphsDirName), nil
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
