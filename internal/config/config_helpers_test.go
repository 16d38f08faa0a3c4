package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault pins the canonical game policy
func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, Validate(&cfg))
	assert.Equal(t, PricingIncremental, cfg.PricingPolicy)
	assert.Equal(t, int64(100), cfg.MilestoneInterval)
	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, SaveModeDebounced, cfg.SaveMode)
}

func TestValidate(t *testing.T) {
	t.Run("rejects empty player id", func(t *testing.T) {
		cfg := Default()
		cfg.PlayerID = ""

		err := Validate(&cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "PlayerID")
	})

	t.Run("rejects negative cache size", func(t *testing.T) {
		cfg := Default()
		cfg.CacheSize = -1

		assert.Error(t, Validate(&cfg))
	})
}
