package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{ModelPath: "models", Target: "dla"})
	require.NoError(t, err)
	assert.Equal(t, "models", cfg.ModelPath)
	assert.Equal(t, "dla", cfg.Target)
}

func TestNewConfigMissingModelPath(t *testing.T) {
	_, err := NewConfig(Config{Target: "dla"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "ModelPath")
}

func TestNewConfigMissingTarget(t *testing.T) {
	_, err := NewConfig(Config{ModelPath: "models"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "Target")
}
