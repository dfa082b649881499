package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/config"
)

func TestNew(t *testing.T) {
	prod, err := New(&config.Config{Env: "production"})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))

	dev, err := New(&config.Config{Env: "local"})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))
}
