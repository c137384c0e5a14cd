package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("OFFICE_LAT", "12.9716")
	t.Setenv("OFFICE_LNG", "77.5946")
}

func TestLoad_PoolDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
}

func TestLoad_PoolFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoad_PoolValidation(t *testing.T) {
	tests := []struct {
		name string
		max  string
		min  string
	}{
		{"max below one", "0", "0"},
		{"min above max", "5", "10"},
		{"malformed max", "lots", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("DB_MAX_CONNS", tt.max)
			t.Setenv("DB_MIN_CONNS", tt.min)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
