package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Info("Solved", "begin", "hit", "end", "cog", "ladders", 2)

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("log line %q should start with an HH:MM:SS.ms timestamp", out)
	}
	for _, want := range []string{"Solved", "begin=hit", "end=cog", "ladders=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  bool
	}{
		{"solve result at info", log.InfoLevel, func(l *log.Logger) { l.Info("Solved", "ladders", 2) }, true},
		{"cache open hidden at info", log.InfoLevel, func(l *log.Logger) { l.Debug("Opened cache", "backend", "file") }, false},
		{"cache open at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("Opened cache", "backend", "file") }, true},
		{"config source at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("Loaded config", "path", "ladder.toml") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("Solved", "ladders", 2)

	out := buf.String()
	for _, want := range []string{"Solved", "ladders=2", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q missing %q", out, want)
		}
	}
}

func TestLoadDictionaryLogsThroughContext(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(classicWords, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	ctx := withLogger(context.Background(), newLogger(&logs, log.InfoLevel))

	d, err := c.loadDictionary(ctx, path, []string{"hit"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != len(classicWords)+1 {
		t.Errorf("Len() = %d, want %d", d.Len(), len(classicWords)+1)
	}
	out := logs.String()
	for _, want := range []string{"Loaded dictionary", "path=" + path, "words=6", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("context logger output %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext(empty) should fall back to log.Default()")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), logger))
	if got != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	got.Info("Opened cache", "backend", "redis")
	if !strings.Contains(buf.String(), "backend=redis") {
		t.Errorf("attached logger output = %q", buf.String())
	}
}
