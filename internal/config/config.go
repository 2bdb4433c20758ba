package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for gedgraph.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Neo4j   Neo4jConfig   `mapstructure:"neo4j"`
	Claude  ClaudeConfig  `mapstructure:"claude"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Neo4jConfig holds graph-export connection settings.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// ClaudeConfig holds Anthropic Claude API settings for narrative sketches.
type ClaudeConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// String returns a safe representation of ClaudeConfig with the API key masked.
func (c ClaudeConfig) String() string {
	return fmt.Sprintf("ClaudeConfig{APIKey:%s, Model:%s}", maskAPIKey(c.APIKey), c.Model)
}

// maskAPIKey shows first 4 + last 4 chars, replacing the middle with asterisks.
func maskAPIKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// ViewerConfig holds host-side viewer settings.
type ViewerConfig struct {
	RecentLimit int    `mapstructure:"recent_limit"`
	RecentPath  string `mapstructure:"recent_path"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("neo4j.uri", "neo4j://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("neo4j.database", "neo4j")

	v.SetDefault("claude.model", "claude-haiku-4-5-20251001")

	v.SetDefault("viewer.recent_limit", 10)
	v.SetDefault("viewer.recent_path", filepath.Join(homeDir(), ".gedgraph", "recent.json"))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".gedgraph"))
	v.AddConfigPath(".")

	v.SetEnvPrefix("GEDGRAPH")
	v.AutomaticEnv()

	_ = v.BindEnv("claude.api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("neo4j.uri", "GEDGRAPH_NEO4J_URI")
	_ = v.BindEnv("neo4j.username", "GEDGRAPH_NEO4J_USERNAME")
	_ = v.BindEnv("neo4j.password", "GEDGRAPH_NEO4J_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK — use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri must not be empty")
	}
	if c.Neo4j.Database == "" {
		return fmt.Errorf("neo4j.database must not be empty")
	}
	if c.Viewer.RecentLimit <= 0 {
		return fmt.Errorf("viewer.recent_limit must be greater than 0")
	}
	if c.Viewer.RecentPath == "" {
		return fmt.Errorf("viewer.recent_path must not be empty")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
