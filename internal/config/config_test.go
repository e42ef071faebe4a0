package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lugassawan/tilik/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)

	content := `base_branch = "develop"

[list]
branches = true
ci = true
strict = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseBranch != "develop" {
		t.Errorf("BaseBranch = %q", cfg.BaseBranch)
	}
	if !cfg.List.Branches || !cfg.List.CI || !cfg.List.Strict {
		t.Errorf("List = %+v", cfg.List)
	}
	if cfg.List.Conflicts {
		t.Error("Conflicts should default to false")
	}
}

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != (config.Config{}) {
		t.Errorf("cfg = %+v, want zero", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("base_branch = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestContextRoundTrip(t *testing.T) {
	cfg := &config.Config{BaseBranch: "main"}
	ctx := config.WithConfig(context.Background(), cfg)

	if got := config.FromContext(ctx); got.BaseBranch != "main" {
		t.Errorf("FromContext = %+v", got)
	}
}

func TestFromContextMissing(t *testing.T) {
	got := config.FromContext(context.Background())
	if got == nil {
		t.Fatal("FromContext should return an empty config, not nil")
	}
	if got.BaseBranch != "" {
		t.Errorf("BaseBranch = %q", got.BaseBranch)
	}
}
