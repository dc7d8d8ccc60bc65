// Package config holds the avep-verify configuration: the fixed lists of
// packages, environment variables and skills the toolkit expects, plus the
// probe commands and endpoints used to check them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// Config represents the complete avep-verify configuration.
type Config struct {
	Version  int            `yaml:"version" json:"version"`
	Runtime  RuntimeConfig  `yaml:"runtime" json:"runtime"`
	Packages PackagesConfig `yaml:"packages" json:"packages"`
	Network  NetworkConfig  `yaml:"network" json:"network"`
	Env      EnvConfig      `yaml:"env" json:"env"`
	Skills   SkillsConfig   `yaml:"skills" json:"skills"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}

// RuntimeConfig configures the runtime version check.
type RuntimeConfig struct {
	// Name is the display name of the runtime (e.g. "Node.js").
	Name string `yaml:"name" json:"name"`
	// Command prints the runtime version when executed.
	Command []string `yaml:"command" json:"command"`
	// MinMajor is the lowest accepted major version.
	MinMajor int `yaml:"min_major" json:"min_major"`
}

// PackagesConfig configures the package presence check.
type PackagesConfig struct {
	// Command is the package manager query; the package name is appended.
	Command []string `yaml:"command" json:"command"`
	// Names lists the packages the toolkit needs, checked in order.
	Names []string `yaml:"names" json:"names"`
}

// NetworkConfig configures the reachability probe.
type NetworkConfig struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	// AcceptStatus lists the HTTP status codes treated as reachable.
	AcceptStatus []int `yaml:"accept_status" json:"accept_status"`
	// Timeout bounds the request. Zero leaves it to the transport defaults.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// EnvVar is an environment variable the toolkit reads.
type EnvVar struct {
	Name     string `yaml:"name" json:"name"`
	Required bool   `yaml:"required" json:"required"`
}

// EnvConfig configures the environment variable check.
type EnvConfig struct {
	Vars []EnvVar `yaml:"vars" json:"vars"`
}

// SkillsConfig configures the skill installation check.
type SkillsConfig struct {
	// Dir is the skills directory relative to the user's home directory.
	Dir string `yaml:"dir" json:"dir"`
	// Marker is the descriptor file every installed skill contains.
	Marker string `yaml:"marker" json:"marker"`
	// Names lists the skills the toolkit ships.
	Names []string `yaml:"names" json:"names"`
}

// LoggingConfig configures debug logging.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// envOverrides are the AVEP_* variables that take precedence over the file.
type envOverrides struct {
	NetworkURL      string        `env:"AVEP_NETWORK_URL"`
	NetworkTimeout  time.Duration `env:"AVEP_NETWORK_TIMEOUT"`
	RuntimeMinMajor int           `env:"AVEP_RUNTIME_MIN_MAJOR"`
	SkillsDir       string        `env:"AVEP_SKILLS_DIR"`
	LogLevel        string        `env:"AVEP_LOG_LEVEL"`
}

// NewConfig creates a new Config with the toolkit's defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Runtime: RuntimeConfig{
			Name:     "Node.js",
			Command:  []string{"node", "--version"},
			MinMajor: 18,
		},
		Packages: PackagesConfig{
			Command: []string{"npm", "list"},
			Names:   []string{"ethers", "zksync-ethers", "ts-node", "dotenv"},
		},
		Network: NetworkConfig{
			Name:         "zkSync Era testnet",
			URL:          "https://api.testnet.abs.xyz",
			AcceptStatus: []int{200, 405},
			Timeout:      0,
		},
		Env: EnvConfig{
			Vars: []EnvVar{
				{Name: "USER_PRIVATE_KEY", Required: false},
				{Name: "RPC_URL", Required: false},
			},
		},
		Skills: SkillsConfig{
			Dir:    ".agent/skills",
			Marker: "SKILL.md",
			Names: []string{
				"ai-keygen",
				"ai-airdrop",
				"ai-create-curve",
				"ai-buy-curve",
				"ai-sell-curve",
				"ai-transfer-curve",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. The YAML file at path, when path is non-empty
//  3. Environment variables (AVEP_*)
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return averrors.New(averrors.ErrCodeConfigNotFound,
				fmt.Sprintf("config file not found: %s", path), err).
				WithSuggestion("Check the --config path")
		}
		return averrors.New(averrors.ErrCodeFilePermission,
			fmt.Sprintf("failed to read config file %s: %v", path, err), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return averrors.ConfigError(fmt.Sprintf("failed to parse config file %s: %v", path, err), err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
// Lists replace the defaults rather than extending them.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	// Runtime
	if other.Runtime.Name != "" {
		c.Runtime.Name = other.Runtime.Name
	}
	if len(other.Runtime.Command) > 0 {
		c.Runtime.Command = other.Runtime.Command
	}
	if other.Runtime.MinMajor != 0 {
		c.Runtime.MinMajor = other.Runtime.MinMajor
	}

	// Packages
	if len(other.Packages.Command) > 0 {
		c.Packages.Command = other.Packages.Command
	}
	if other.Packages.Names != nil {
		c.Packages.Names = other.Packages.Names
	}

	// Network
	if other.Network.Name != "" {
		c.Network.Name = other.Network.Name
	}
	if other.Network.URL != "" {
		c.Network.URL = other.Network.URL
	}
	if len(other.Network.AcceptStatus) > 0 {
		c.Network.AcceptStatus = other.Network.AcceptStatus
	}
	if other.Network.Timeout != 0 {
		c.Network.Timeout = other.Network.Timeout
	}

	// Env
	if other.Env.Vars != nil {
		c.Env.Vars = other.Env.Vars
	}

	// Skills
	if other.Skills.Dir != "" {
		c.Skills.Dir = other.Skills.Dir
	}
	if other.Skills.Marker != "" {
		c.Skills.Marker = other.Skills.Marker
	}
	if other.Skills.Names != nil {
		c.Skills.Names = other.Skills.Names
	}

	// Logging
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}

// applyEnvOverrides applies AVEP_* environment variables (highest precedence).
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return averrors.ConfigError(fmt.Sprintf("parse env: %v", err), err)
	}

	if o.NetworkURL != "" {
		c.Network.URL = o.NetworkURL
	}
	if o.NetworkTimeout != 0 {
		c.Network.Timeout = o.NetworkTimeout
	}
	if o.RuntimeMinMajor != 0 {
		c.Runtime.MinMajor = o.RuntimeMinMajor
	}
	if o.SkillsDir != "" {
		c.Skills.Dir = o.SkillsDir
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Runtime.Command) == 0 || c.Runtime.Command[0] == "" {
		return averrors.ConfigError("runtime.command must not be empty", nil)
	}
	if c.Runtime.MinMajor <= 0 {
		return averrors.ConfigError(fmt.Sprintf("runtime.min_major must be positive, got %d", c.Runtime.MinMajor), nil)
	}
	if len(c.Packages.Command) == 0 || c.Packages.Command[0] == "" {
		return averrors.ConfigError("packages.command must not be empty", nil)
	}
	for _, name := range c.Packages.Names {
		if strings.TrimSpace(name) == "" {
			return averrors.ConfigError("packages.names must not contain empty names", nil)
		}
	}

	if c.Network.URL == "" {
		return averrors.ConfigError("network.url must not be empty", nil)
	}
	if !strings.HasPrefix(c.Network.URL, "http://") && !strings.HasPrefix(c.Network.URL, "https://") {
		return averrors.ConfigError(fmt.Sprintf("network.url must be an http(s) URL, got %s", c.Network.URL), nil)
	}
	if c.Network.Timeout < 0 {
		return averrors.ConfigError(fmt.Sprintf("network.timeout must be non-negative, got %s", c.Network.Timeout), nil)
	}
	for _, code := range c.Network.AcceptStatus {
		if code < 100 || code > 599 {
			return averrors.ConfigError(fmt.Sprintf("network.accept_status contains invalid HTTP status %d", code), nil)
		}
	}

	for _, v := range c.Env.Vars {
		if strings.TrimSpace(v.Name) == "" {
			return averrors.ConfigError("env.vars must not contain empty names", nil)
		}
	}

	if c.Skills.Dir == "" {
		return averrors.ConfigError("skills.dir must not be empty", nil)
	}
	if c.Skills.Marker == "" {
		return averrors.ConfigError("skills.marker must not be empty", nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return averrors.ConfigError(fmt.Sprintf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level), nil)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
