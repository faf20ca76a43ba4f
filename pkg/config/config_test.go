package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "X-Session-Token", cfg.Session.HeaderName)
	assert.Equal(t, "qa_session", cfg.Session.CookieName)
	assert.Equal(t, 90*time.Second, cfg.AI.GenerationTimeout)
	assert.Equal(t, 5*time.Second, cfg.Review.TagEntryTimeout)
	assert.Equal(t, 7*time.Second, cfg.Review.LegendTimeout)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadBytes)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REVIEW_LEGEND_TIMEOUT", "3s")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Review.LegendTimeout)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db ")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults outside production",
			mutate: func(*Config) {},
		},
		{
			name: "default secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
			},
			wantErr: "SESSION_SECRET",
		},
		{
			name: "production with secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Session.Secret = "s3cret"
			},
		},
		{
			name: "zero session ttl",
			mutate: func(c *Config) {
				c.Session.TTL = 0
			},
			wantErr: "SESSION_TTL",
		},
		{
			name: "zero generation timeout",
			mutate: func(c *Config) {
				c.AI.GenerationTimeout = 0
			},
			wantErr: "AI_GENERATION_TIMEOUT",
		},
		{
			name: "zero dialog timeout",
			mutate: func(c *Config) {
				c.Review.LegendTimeout = 0
			},
			wantErr: "REVIEW_LEGEND_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
