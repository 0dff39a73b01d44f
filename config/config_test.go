package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "shop", cfg.Postgres.Name)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database)
	assert.Equal(t, 500, cfg.ETL.ChunkSize)
	assert.Equal(t, 30, cfg.ETL.ConnectAttempts)
	assert.Equal(t, 2*time.Second, cfg.ETL.ConnectDelay)
	assert.Empty(t, cfg.ETL.Schedule)
	assert.Equal(t, 5, cfg.Recs.DefaultLimit)
	assert.Equal(t, 20, cfg.Recs.MaxLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ETL_CHUNK_SIZE", "100")
	t.Setenv("ETL_CONNECT_DELAY", "500ms")
	t.Setenv("NEO4J_URI", "bolt://neo4j:7687")
	t.Setenv("RECS_DEFAULT_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 100, cfg.ETL.ChunkSize)
	assert.Equal(t, 500*time.Millisecond, cfg.ETL.ConnectDelay)
	assert.Equal(t, "bolt://neo4j:7687", cfg.Neo4j.URI)
	assert.Equal(t, 10, cfg.Recs.DefaultLimit)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("ETL_CHUNK_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.ETL.ChunkSize)
}

func TestValidateRejectsBadLimits(t *testing.T) {
	t.Setenv("RECS_DEFAULT_LIMIT", "50")
	t.Setenv("RECS_MAX_LIMIT", "20")

	_, err := Load()
	assert.Error(t, err)
}
