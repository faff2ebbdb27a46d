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

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "memory", cfg.Users.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Graph.Enabled())
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Empty(t, cfg.HTTP.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("GRAPH_URI", "bolt://localhost:7687")
	t.Setenv("USERS_DRIVER", "SQLite")
	t.Setenv("USERS_DSN", "file:users.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, cfg.Graph.Enabled())
	assert.Equal(t, "sqlite", cfg.Users.Driver)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":        {"SERVER_PORT": "abc"},
		"port range":      {"SERVER_PORT": "70000"},
		"bad duration":    {"SERVER_IDLE_TIMEOUT": "soon"},
		"unknown driver":  {"USERS_DRIVER": "oracle"},
		"missing sql dsn": {"USERS_DRIVER": "postgres"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
