package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"namesake/internal/config"
	"namesake/internal/name"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("NAMESAKE_CATALOG", "")
	t.Chdir(t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected no config file to exist, got %q", path)
	}
	if want := filepath.Join(tempHome, ".config", "namesake", "config.toml"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}

	wantCatalog := filepath.Join(tempHome, ".local", "share", "namesake", "catalog.db")
	if cfg.Catalog.Path != wantCatalog {
		t.Fatalf("Catalog.Path = %q, want %q", cfg.Catalog.Path, wantCatalog)
	}
	if cfg.Matching.Threshold != name.DefaultThreshold {
		t.Fatalf("Threshold = %d, want %d", cfg.Matching.Threshold, name.DefaultThreshold)
	}
	if cfg.Matching.RomanizationScore != name.DefaultRomanizationScore {
		t.Fatalf("RomanizationScore = %d", cfg.Matching.RomanizationScore)
	}
	if cfg.Matching.Aggregate != "max" || !cfg.Matching.OtherVersions || cfg.Matching.Workers != 4 {
		t.Fatalf("unexpected matching defaults: %+v", cfg.Matching)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if got := cfg.CatalogLockTimeout(); got != 10*time.Second {
		t.Fatalf("CatalogLockTimeout() = %v", got)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(tempHome, "custom.toml")
	content := `[matching]
threshold = 90
romanization_score = 92
aggregate = " Mean "
other_versions = false
workers = 8

[catalog]
path = "~/names/catalog.db"
lock_timeout = 3

[logging]
format = "JSON"
level = "Debug"
file = "~/logs/namesake.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("Load() path = %q exists = %v", resolved, exists)
	}
	if cfg.Matching.Threshold != 90 || cfg.Matching.RomanizationScore != 92 {
		t.Fatalf("unexpected thresholds: %+v", cfg.Matching)
	}
	if cfg.Matching.Aggregate != "mean" {
		t.Fatalf("Aggregate = %q, want mean", cfg.Matching.Aggregate)
	}
	if cfg.Matching.OtherVersions || cfg.Matching.Workers != 8 {
		t.Fatalf("unexpected matching section: %+v", cfg.Matching)
	}
	if want := filepath.Join(tempHome, "names", "catalog.db"); cfg.Catalog.Path != want {
		t.Fatalf("Catalog.Path = %q, want %q", cfg.Catalog.Path, want)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
	if want := filepath.Join(tempHome, "logs", "namesake.log"); cfg.Logging.File != want {
		t.Fatalf("Logging.File = %q, want %q", cfg.Logging.File, want)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)

	if err := os.WriteFile("namesake.toml", []byte("[matching]\nthreshold = 70\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(path) != "namesake.toml" {
		t.Fatalf("Load() path = %q exists = %v", path, exists)
	}
	if cfg.Matching.Threshold != 70 {
		t.Fatalf("Threshold = %d, want 70", cfg.Matching.Threshold)
	}
}

func TestCatalogEnvFallback(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	envPath := filepath.Join(tempHome, "env", "names.db")
	t.Setenv("NAMESAKE_CATALOG", envPath)

	cfg, _, _, err := config.Load(filepath.Join(tempHome, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.Path != envPath {
		t.Fatalf("Catalog.Path = %q, want %q", cfg.Catalog.Path, envPath)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"threshold too high", "[matching]\nthreshold = 101\n", "matching.threshold"},
		{"negative romanization score", "[matching]\nromanization_score = -1\n", "matching.romanization_score"},
		{"unknown aggregate", "[matching]\naggregate = \"median\"\n", "matching.aggregate"},
		{"zero workers", "[matching]\nworkers = 0\n", "matching.workers"},
		{"negative lock timeout", "[catalog]\nlock_timeout = -5\n", "catalog.lock_timeout"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := t.TempDir()
			t.Setenv("HOME", tempHome)
			path := filepath.Join(tempHome, "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want validation error")
			}
			if !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("Load() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(tempHome, "config.toml")
	if err := os.WriteFile(path, []byte("[matching]\nthreshhold = 70\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to fail parsing")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("NAMESAKE_CATALOG", "")

	path := filepath.Join(tempHome, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample) error: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	defaults := config.Default()
	if cfg.Matching != defaults.Matching {
		t.Fatalf("sample matching = %+v, want %+v", cfg.Matching, defaults.Matching)
	}
}

func TestMatchOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Matching.Threshold = 95
	cfg.Matching.Aggregate = "min"

	query := name.New("Girls' Generation", "소녀시대")
	candidate := name.New("SNSD", "소녀시대")
	if query.Matches(candidate, cfg.MatchOptions()...) {
		t.Fatal("expected strict configuration to reject SNSD alias")
	}

	cfg = config.Default()
	if !query.Matches(candidate, cfg.MatchOptions()...) {
		t.Fatal("expected default configuration to accept SNSD alias")
	}
}

func TestExpandPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/a/../b")
	if err != nil {
		t.Fatalf("ExpandPath error: %v", err)
	}
	if want := filepath.Join(tempHome, "b"); got != want {
		t.Fatalf("ExpandPath() = %q, want %q", got, want)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("ExpandPath(\"\") = %q, want empty", got)
	}
}
