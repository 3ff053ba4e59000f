package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "portfolio", cfg.MongoDB)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jURI)
	assert.Equal(t, "datasets", cfg.DatasetsDir)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MONGO_DB", "portfolio_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "portfolio_test", cfg.MongoDB)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		MongoURL:      "mongodb://localhost:27017",
		MongoDB:       "portfolio",
		Neo4jURI:      "bolt://localhost:7687",
		Neo4jUser:     "neo4j",
		Neo4jPassword: "password",
	}
	assert.NoError(t, cfg.Validate())

	cfg.Neo4jPassword = ""
	assert.Error(t, cfg.Validate())
}
