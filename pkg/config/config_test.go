package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "inventoryPro", cfg.Redis.Key)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled())
	assert.Empty(t, cfg.Report.Collation)
}

func TestFromViper_ValoresDeEntorno(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Redis")
	v.Set("REDIS_DB", "3")
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_SEED_SAMPLE", "true")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Store.SeedSample)
	assert.True(t, cfg.JWT.Enabled())
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_SecretSinPassword(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
