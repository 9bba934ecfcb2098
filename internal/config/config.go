package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env    string       `yaml:"env" env:"CHESS_TCG_ENV"`
	Server ServerConfig `yaml:"server"`
	Paths  PathsConfig  `yaml:"paths"`
	Rules  RulesConfig  `yaml:"rules"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"CHESS_TCG_ADDR"`
}

type PathsConfig struct {
	DataDir     string `yaml:"data_dir" env:"CHESS_TCG_DATA_DIR"`
	ExportsRoot string `yaml:"exports_root" env:"CHESS_TCG_EXPORTS_ROOT"`
	LogsRoot    string `yaml:"logs_root" env:"CHESS_TCG_LOGS_ROOT"`
	StaticDir   string `yaml:"static_dir" env:"CHESS_TCG_STATIC_DIR"`
}

type RulesConfig struct {
	// Copy caps per card type. The ruleset tightened tactics from 3 to 2;
	// these defaults are the current rule.
	PieceCopyLimit  int `yaml:"piece_copy_limit"`
	TacticCopyLimit int `yaml:"tactic_copy_limit"`
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Env) == "" {
		c.Env = EnvDevelopment
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":3000"
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = "data"
	}
	if strings.TrimSpace(c.Paths.ExportsRoot) == "" {
		c.Paths.ExportsRoot = "exports"
	}
	if strings.TrimSpace(c.Paths.LogsRoot) == "" {
		c.Paths.LogsRoot = "logs"
	}
	if strings.TrimSpace(c.Paths.StaticDir) == "" {
		c.Paths.StaticDir = "static"
	}
	if c.Rules.PieceCopyLimit <= 0 {
		c.Rules.PieceCopyLimit = 3
	}
	if c.Rules.TacticCopyLimit <= 0 {
		c.Rules.TacticCopyLimit = 2
	}
}

// IsDevelopment gates surfaces that must never run in production, like the
// CSV import endpoint.
func (c *Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}

// Load reads the YAML config at path, layers environment overrides on top,
// and fills defaults. A missing file is not an error: env and defaults apply.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := parseEnv(&c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
