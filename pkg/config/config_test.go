package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ladder/pkg/cache"
	"github.com/matzehuels/ladder/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Cache.Backend != cache.BackendFile {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[dictionary]
path = "/tmp/words.txt"

[search]
max_steps = 12

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "90m"
key_prefix = "staging:"

[server]
timeout = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"dictionary", cfg.Dictionary.Path, "/tmp/words.txt"},
		{"max steps", cfg.Search.MaxSteps, 12},
		{"max paths default", cfg.Search.MaxPaths, 10000},
		{"backend", cfg.Cache.Backend, "redis"},
		{"redis addr", cfg.Cache.RedisAddr, "cache:6379"},
		{"ttl", cfg.Cache.TTL.Duration, 90 * time.Minute},
		{"key prefix", cfg.Cache.KeyPrefix, "staging:"},
		{"mongo default", cfg.Cache.MongoCollection, "results"},
		{"timeout", cfg.Server.Timeout.Duration, 5 * time.Second},
		{"concurrency default", cfg.Server.Concurrency, 4},
		{"source", cfg.Source, path},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    errors.Code
		msg     string
	}{
		{"syntax", "[search\nmax_steps = 1", errors.ErrCodeInvalidConfig, "parse"},
		{"unknown key", "[search]\nmax_stepz = 1", errors.ErrCodeInvalidConfig, "search.max_stepz"},
		{"bad duration", "[cache]\nttl = \"soon\"", errors.ErrCodeInvalidConfig, "parse"},
		{"negative limit", "[search]\nmax_paths = -1", errors.ErrCodeInvalidConfig, "negative"},
		{"bad backend", "[cache]\nbackend = \"memcached\"", errors.ErrCodeInvalidConfig, "memcached"},
		{"zero concurrency", "[server]\nconcurrency = 0", errors.ErrCodeInvalidConfig, "concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load() error = %v, want code %s", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing explicit) = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") with no file = %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, AppName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, AppName, FileName)
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := DefaultPath(); got != path {
		t.Errorf("DefaultPath() = %q, want %q", got, path)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", AppName) {
		t.Errorf("CacheDir() = %q", dir)
	}
}

func TestCacheOptions(t *testing.T) {
	cfg := Default()
	if got := cfg.CacheOptions("/fallback").Dir; got != "/fallback" {
		t.Errorf("Dir = %q, want /fallback", got)
	}
	cfg.Cache.Dir = "/custom"
	if got := cfg.CacheOptions("/fallback").Dir; got != "/custom" {
		t.Errorf("Dir = %q, want /custom", got)
	}
}

func TestKeyer(t *testing.T) {
	cfg := Default()
	if k := cfg.Keyer(); k != nil {
		t.Errorf("Keyer() without prefix = %T, want nil", k)
	}

	cfg.Cache.KeyPrefix = "staging:"
	k := cfg.Keyer()
	if k == nil {
		t.Fatal("Keyer() with prefix = nil")
	}
	plain := cache.NewDefaultKeyer()
	opts := cache.LadderKeyOpts{MaxPaths: 10}
	if got, want := k.LadderKey("hit", "cog", "d1", opts), "staging:"+plain.LadderKey("hit", "cog", "d1", opts); got != want {
		t.Errorf("LadderKey = %q, want %q", got, want)
	}
	gopts := cache.GraphKeyOpts{Format: "dot"}
	if got, want := k.GraphKey("hit", "cog", "d1", gopts), "staging:"+plain.GraphKey("hit", "cog", "d1", gopts); got != want {
		t.Errorf("GraphKey = %q, want %q", got, want)
	}
}
