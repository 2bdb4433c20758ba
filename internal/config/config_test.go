package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a scratch directory so a developer's local config.yaml is
	// not picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "neo4j://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database)
	assert.Equal(t, 10, cfg.Viewer.RecentLimit)
	assert.NotEmpty(t, cfg.Viewer.RecentPath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEDGRAPH_NEO4J_URI", "neo4j://db.example:7687")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "neo4j://db.example:7687", cfg.Neo4j.URI)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Logging: LoggingConfig{Level: "info", Format: "text"},
			Neo4j:   Neo4jConfig{URI: "neo4j://localhost:7687", Database: "neo4j"},
			Viewer:  ViewerConfig{RecentLimit: 10, RecentPath: "/tmp/recent.json"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("empty neo4j uri", func(t *testing.T) {
		c := base()
		c.Neo4j.URI = ""
		assert.Error(t, c.Validate())
	})

	t.Run("zero recent limit", func(t *testing.T) {
		c := base()
		c.Viewer.RecentLimit = 0
		assert.Error(t, c.Validate())
	})

	t.Run("bad logging format", func(t *testing.T) {
		c := base()
		c.Logging.Format = "xml"
		assert.Error(t, c.Validate())
	})
}

func TestClaudeConfigMasksAPIKey(t *testing.T) {
	c := ClaudeConfig{APIKey: "sk-ant-REDACTED", Model: "claude-haiku-4-5-20251001"}
	s := c.String()
	assert.NotContains(t, s, "super-secret")
	assert.Contains(t, s, "sk-a")

	short := ClaudeConfig{APIKey: "tiny"}
	assert.Contains(t, short.String(), "***")
}
