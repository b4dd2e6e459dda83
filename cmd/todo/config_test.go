package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run("TODO_ENV="+tt.value, func(t *testing.T) {
			t.Setenv("TODO_ENV", tt.value)
			assert.Equal(t, tt.expected, getEnvironment())
		})
	}
}

func TestEnvironment_ServerMode(t *testing.T) {
	assert.Equal(t, config.ModeDebug, Development.ServerMode())
	assert.Equal(t, config.ModeTest, Testing.ServerMode())
	assert.Equal(t, config.ModeRelease, Production.ServerMode())
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Run("environment picks the defaults", func(t *testing.T) {
		t.Setenv("TODO_ENV", "development")

		cfg, err := loadConfig(&config.ConfigOverrides{})
		require.NoError(t, err)
		assert.Equal(t, config.ModeDebug, cfg.Server.Mode)
		assert.True(t, cfg.Application.Debug)
	})

	t.Run("TODO_ variables beat the environment", func(t *testing.T) {
		t.Setenv("TODO_ENV", "development")
		t.Setenv("TODO_SERVER_MODE", "release")
		t.Setenv("TODO_APP_DEBUG", "false")

		cfg, err := loadConfig(&config.ConfigOverrides{})
		require.NoError(t, err)
		assert.Equal(t, config.ModeRelease, cfg.Server.Mode)
		assert.False(t, cfg.Application.Debug)
	})

	t.Run("flags beat everything", func(t *testing.T) {
		t.Setenv("TODO_ENV", "testing")
		t.Setenv("TODO_SERVER_PORT", "9000")

		port := 8123
		mode := config.ModeDebug
		cfg, err := loadConfig(&config.ConfigOverrides{Port: &port, Mode: &mode})
		require.NoError(t, err)
		assert.Equal(t, 8123, cfg.Server.Port)
		assert.Equal(t, config.ModeDebug, cfg.Server.Mode)
	})
}

func TestCollectFlags(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "9090", "--static-dir", "public", "--debug"}))

	overrides := &config.ConfigOverrides{}
	collectFlags(cmd, overrides)

	require.NotNil(t, overrides.Port)
	assert.Equal(t, 9090, *overrides.Port)
	require.NotNil(t, overrides.StaticDir)
	assert.Equal(t, "public", *overrides.StaticDir)
	require.NotNil(t, overrides.Debug)
	assert.True(t, *overrides.Debug)
	assert.Nil(t, overrides.Host, "unset flags must not override")
	assert.Nil(t, overrides.DBDir)
}
