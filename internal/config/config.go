package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file name used by tilik.
const FileName = ".tilik.toml"

// Config holds repository-level settings. Everything is optional; the
// tool works without a config file.
type Config struct {
	// BaseBranch overrides default-branch detection as the reference
	// for ahead/behind and diff totals.
	BaseBranch string `toml:"base_branch,omitempty"`

	List ListConfig `toml:"list,omitempty"`
}

// ListConfig holds defaults for the list command, overridable by flags.
type ListConfig struct {
	Branches  bool `toml:"branches,omitempty"`
	CI        bool `toml:"ci,omitempty"`
	Conflicts bool `toml:"conflicts,omitempty"`
	Strict    bool `toml:"strict,omitempty"`
}

// Load reads the config at path. A missing file yields an empty config
// without error; a malformed file is a hard error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

type ctxKey struct{}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the carried config, or an empty config when none
// was attached.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	if cfg == nil {
		return &Config{}
	}
	return cfg
}
