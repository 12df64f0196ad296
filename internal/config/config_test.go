package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.App.Env)
	assert.True(t, cfg.IsLocal())
	assert.False(t, cfg.IsNotLocal())
	assert.Equal(t, 60, cfg.Slots.DurationMinutes)
	assert.Equal(t, 5, cfg.Slots.HorizonDays)
	assert.Equal(t, time.Hour, cfg.SlotDuration())
	assert.Equal(t, 10*time.Second, cfg.Scheduler.Timeout)
	assert.Empty(t, cfg.Auth.BasicClients)
	assert.Equal(t, "UTC", TimeZone.String())
}

func TestNewConfig_EnvIsLowercased(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.True(t, cfg.IsNotLocal())
}

func TestNewConfig_CacheRequiresRabbitMQ(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Cache.Enabled)

	t.Setenv("RABBITMQ_ENABLED", "true")
	cfg, err = NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Cache.Enabled)
}

func TestNewConfig_InvalidTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Nowhere/Atlantis")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestParseBasicClients(t *testing.T) {
	clients := ParseBasicClients("front:secret, ops:p:w,broken,:nouser")

	require.Len(t, clients, 2)
	assert.Equal(t, ConfigBasicClient{Username: "front", Password: "secret"}, clients[0])
	assert.Equal(t, ConfigBasicClient{Username: "ops", Password: "p:w"}, clients[1])

	assert.Empty(t, ParseBasicClients(""))
}
