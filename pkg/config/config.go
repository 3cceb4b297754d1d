// Package config loads ladder.toml.
//
// A configuration file is optional. [Load] looks for it at the path given on
// the command line, then at $XDG_CONFIG_HOME/ladder/ladder.toml, then at
// ~/.config/ladder/ladder.toml. Keys that are absent keep their defaults:
//
//	[dictionary]
//	path = "/usr/share/dict/words"
//
//	[search]
//	max_steps = 0      # 0 = unlimited
//	max_paths = 10000
//
//	[cache]
//	backend = "file"   # file, redis, mongo, none
//	ttl = "168h"
//
//	[server]
//	addr = ":8080"
//	concurrency = 4
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ladder/pkg/cache"
	lerrors "github.com/matzehuels/ladder/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "ladder"

// FileName is the configuration file name.
const FileName = "ladder.toml"

// Config is the decoded configuration file.
type Config struct {
	Dictionary Dictionary `toml:"dictionary"`
	Search     Search     `toml:"search"`
	Cache      Cache      `toml:"cache"`
	Server     Server     `toml:"server"`

	// Source is the file the configuration was read from, empty when only
	// defaults apply.
	Source string `toml:"-"`
}

// Dictionary locates the default word list.
type Dictionary struct {
	Path string `toml:"path"`
}

// Search holds the default solver limits.
type Search struct {
	MaxSteps int `toml:"max_steps"`
	MaxPaths int `toml:"max_paths"`
}

// Cache selects the result cache backend.
type Cache struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`

	// KeyPrefix scopes every cache key, so deployments sharing one Redis or
	// Mongo backend keep separate entries.
	KeyPrefix string `toml:"key_prefix"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures `ladder serve`.
type Server struct {
	Addr        string   `toml:"addr"`
	Concurrency int      `toml:"concurrency"`
	Timeout     Duration `toml:"timeout"`
}

// Duration decodes TOML strings such as "90s" or "168h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: Search{MaxPaths: 10000},
		Cache: Cache{
			Backend:         cache.BackendFile,
			TTL:             Duration{cache.TTLLadder},
			RedisAddr:       "localhost:6379",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   AppName,
			MongoCollection: "results",
		},
		Server: Server{
			Addr:        ":8080",
			Concurrency: 4,
			Timeout:     Duration{30 * time.Second},
		},
	}
}

// Load reads the configuration file. An explicit path must exist; when path
// is empty the default locations are tried and a missing file yields
// [Default].
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, lerrors.Wrap(lerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return nil, lerrors.Wrap(lerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, lerrors.New(lerrors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and backend names.
func (c *Config) Validate() error {
	if c.Search.MaxSteps < 0 || c.Search.MaxPaths < 0 {
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "search limits must not be negative")
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendRedis, cache.BackendMongo, cache.BackendNone:
	default:
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if c.Server.Concurrency < 1 {
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "server concurrency must be at least 1")
	}
	return nil
}

// CacheOptions converts the [cache] section for cache.Open. An empty dir
// falls back to fallbackDir.
func (c *Config) CacheOptions(fallbackDir string) cache.Options {
	dir := c.Cache.Dir
	if dir == "" {
		dir = fallbackDir
	}
	return cache.Options{
		Backend:         c.Cache.Backend,
		Dir:             dir,
		RedisAddr:       c.Cache.RedisAddr,
		RedisPassword:   c.Cache.RedisPassword,
		RedisDB:         c.Cache.RedisDB,
		MongoURI:        c.Cache.MongoURI,
		MongoDatabase:   c.Cache.MongoDatabase,
		MongoCollection: c.Cache.MongoCollection,
	}
}

// Keyer returns the cache keyer for the configured key prefix. It is nil
// when no prefix is set, which selects the default keyer.
func (c *Config) Keyer() cache.Keyer {
	if c.Cache.KeyPrefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, c.Cache.KeyPrefix)
}

// DefaultPath returns the XDG location of ladder.toml, or "" when no home
// directory is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName, FileName)
}

// CacheDir returns the XDG cache directory (~/.cache/ladder/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(home, ".cache", AppName), nil
}
