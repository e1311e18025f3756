package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	HTTPPort      string
	DatabaseURL   string
	DatabaseName  string
	SessionSecret string
	SessionMaxAge time.Duration
	SeedDemoUsers bool
	Migrate       bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real env vars win over it.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		Env:           get("APP_ENV", "dev"),
		HTTPPort:      get("PORT", "8099"),
		DatabaseURL:   get("DATABASE_URL", get("MONGODB_URI", "mongodb://localhost:27017")),
		DatabaseName:  get("DB_NAME", "bookapp"),
		SessionSecret: get("SESSION_SECRET", "change_this_secret"),
		SessionMaxAge: getDuration("SESSION_MAX_AGE", 24*time.Hour),
		SeedDemoUsers: getBool("SEED_DEMO_USERS", true),
		Migrate:       getBool("APP_MIGRATE", false),
	}
	return cfg
}

// Driver names the store backend implied by DatabaseURL's scheme.
func (c Config) Driver() string {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "mongodb://"), strings.HasPrefix(c.DatabaseURL, "mongodb+srv://"):
		return "mongo"
	case strings.HasPrefix(c.DatabaseURL, "postgres://"), strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(c.DatabaseURL, "memory://"):
		return "memory"
	}
	return ""
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
