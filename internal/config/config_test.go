package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DATABASE_URL", "MONGODB_URI", "DB_NAME", "SESSION_SECRET", "SESSION_MAX_AGE", "SEED_DEMO_USERS", "APP_MIGRATE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8099", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "bookapp", cfg.DatabaseName)
	assert.Equal(t, 24*time.Hour, cfg.SessionMaxAge)
	assert.True(t, cfg.SeedDemoUsers)
	assert.False(t, cfg.Migrate)
	assert.Equal(t, "mongo", cfg.Driver())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "mongodb+srv://cluster.example.net")
	t.Setenv("SESSION_MAX_AGE", "90m")
	t.Setenv("SEED_DEMO_USERS", "false")

	cfg := FromEnv()

	assert.Equal(t, "mongodb+srv://cluster.example.net", cfg.DatabaseURL)
	assert.Equal(t, 90*time.Minute, cfg.SessionMaxAge)
	assert.False(t, cfg.SeedDemoUsers)
}

func TestDriver(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"mongodb://localhost:27017", "mongo"},
		{"mongodb+srv://x.mongodb.net", "mongo"},
		{"postgres://u:p@localhost:5432/books", "postgres"},
		{"postgresql://localhost/books", "postgres"},
		{"memory://", "memory"},
		{"mysql://localhost", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{DatabaseURL: tt.url}.Driver())
		})
	}
}
