// Package config loads ~/.chefchat/config.toml, optionally overlaid by a .env
// file and CHEFCHAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. CHEFCHAT_STORE_BACKEND.
const EnvPrefix = "CHEFCHAT"

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config represents the global ~/.chefchat/config.toml.
type Config struct {
	DefaultSession string        `toml:"default_session" split_words:"true"`
	Store          StoreConfig   `toml:"store"`
	Redis          RedisConfig   `toml:"redis"`
	AMQP           AMQPConfig    `toml:"amqp"`
	Metrics        MetricsConfig `toml:"metrics"`
	Log            LogConfig     `toml:"log"`
	Chat           ChatConfig    `toml:"chat"`
}

// StoreConfig picks the document store. SQLite lives in the session directory.
type StoreConfig struct {
	Backend        string `toml:"backend"`
	MongoURI       string `toml:"mongo_uri" split_words:"true"`
	MongoDatabase  string `toml:"mongo_database" split_words:"true"`
	MongoPoolSize  uint64 `toml:"mongo_pool_size" split_words:"true"`
	TimeoutSeconds int    `toml:"timeout_seconds" split_words:"true"`
}

// RedisConfig enables the shared presence tracker. Empty Addr keeps presence in
// memory; ViewingTTLSeconds bounds viewing marks in either mode.
type RedisConfig struct {
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	ViewingTTLSeconds int    `toml:"viewing_ttl_seconds" split_words:"true"`
}

// AMQPConfig enables event forwarding. Empty URL disables it.
type AMQPConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// MetricsConfig enables the debug HTTP server. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type ChatConfig struct {
	PageSize int `toml:"page_size" split_words:"true"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:        BackendSQLite,
			MongoDatabase:  "chefchat",
			TimeoutSeconds: 10,
		},
		AMQP: AMQPConfig{Exchange: "chefchat.events"},
		Log:  LogConfig{Level: "info"},
		Chat: ChatConfig{PageSize: 20},
	}
}

// Load reads config from the given path on top of the defaults. Returns an
// error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLayered applies, in order: defaults, the TOML file at path (if present),
// the dotenv file at envFile (if present) and CHEFCHAT_* variables. Variables
// already set in the environment win over the dotenv file.
func LoadLayered(path, envFile string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late, at daemon start.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
	case BackendMongo:
		if c.Store.MongoURI == "" {
			return errors.New("store.mongo_uri is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Chat.PageSize < 0 {
		return fmt.Errorf("chat.page_size must not be negative, got %d", c.Chat.PageSize)
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
