package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the usage-data service configuration, loaded from environment
// variables with local-dev defaults.
type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Path string
	}
	Log struct {
		Level  string
		Format string
	}
	Posts PostsConfig
}

// PostsConfig configures the third-party posts upstream used by the
// external-posts proxy endpoint.
type PostsConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":4000")

	// SQLite file next to the process by default.
	cfg.DB.Path = getEnv("DB_PATH", "data.db")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Posts.BaseURL = getEnv("POSTS_BASE_URL", "https://jsonplaceholder.typicode.com")
	cfg.Posts.Timeout = time.Duration(parseInt(getEnv("POSTS_TIMEOUT_SECONDS", "10"), 10)) * time.Second

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
