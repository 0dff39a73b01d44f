package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	logger := New("debug", "production")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger := New("nonsense", "production")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
