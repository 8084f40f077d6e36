package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
database:
  host: db.local
  user: feed
  password: secret
  dbname: feed
jwt:
  secret: 0123456789abcdef0123456789abcdef
redis:
  addr: redis.local:6379
`

func readYAML(t *testing.T, body string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(body)))
	return v
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	t.Run("Defaults applied", func(t *testing.T) {
		cfg, err := Load(readYAML(t, sampleYAML))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, int64(24*30), cfg.JWT.Expire)
		assert.Equal(t, float64(50), cfg.RateLimit.QPS)
		assert.Equal(t, 600, cfg.RateLimit.IdleTTL)
		assert.Equal(t, "redis.local:6379", cfg.Redis.Addr)
	})

	t.Run("Env overrides file", func(t *testing.T) {
		t.Setenv("DB_HOST", "override.local")

		cfg, err := Load(readYAML(t, sampleYAML))

		require.NoError(t, err)
		assert.Equal(t, "override.local", cfg.Database.Host)
	})

	t.Run("Short JWT secret rejected", func(t *testing.T) {
		body := strings.Replace(sampleYAML, "0123456789abcdef0123456789abcdef", "short", 1)

		_, err := Load(readYAML(t, body))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})
}

func TestDatabaseURL(t *testing.T) {
	d := DatabaseConfig{Host: "h", User: "u", Password: "p", DBName: "n", Port: "5432", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.URL())
	assert.Contains(t, d.DSN(), "dbname=n")
}
