package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type TrackConfig struct {
	ProjectID      string
	APIURL         string
	APIVersion     string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type ReceiverConfig struct {
	ServerAddr    string
	DatabasePath  string
	AdminUsername string
	AdminPassword string
	// AllowedProjectIDs restricts accepted projectId headers; empty accepts any.
	AllowedProjectIDs []string
	EventChannel      string
	Redis             *RedisConfig
}

// LoadTrackConfig reads client config from environment or returns defaults
func LoadTrackConfig() (*TrackConfig, error) {
	reqTimeout := 10 * time.Second
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			reqTimeout = time.Duration(i) * time.Second
		}
	}

	return &TrackConfig{
		ProjectID:      os.Getenv("FIREBIRD_PROJECT_ID"),
		APIURL:         envOrDefault("FIREBIRD_API_URL", "http://localhost:8090"),
		APIVersion:     envOrDefault("FIREBIRD_API_VERSION", "v1"),
		RequestTimeout: reqTimeout,
	}, nil
}

func (c *TrackConfig) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return fmt.Errorf("project id is required (FIREBIRD_PROJECT_ID)")
	}
	if c.APIURL == "" {
		return fmt.Errorf("api url is required (FIREBIRD_API_URL)")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// LoadReceiverConfig reads receiver config from environment or returns defaults
func LoadReceiverConfig() (*ReceiverConfig, error) {
	cfg := &ReceiverConfig{
		ServerAddr:        envOrDefault("RECEIVER_ADDR", ":8090"),
		DatabasePath:      envOrDefault("DATABASE_PATH", "./data/firebird.db"),
		AdminUsername:     envOrDefault("ADMIN_USER", "admin"),
		AdminPassword:     envOrDefault("ADMIN_PASSWORD", "password"),
		AllowedProjectIDs: splitList(os.Getenv("ALLOWED_PROJECT_IDS")),
		EventChannel:      envOrDefault("EVENT_CHANNEL", "firebird.user-details.saved"),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		port := 6379
		if v := os.Getenv("REDIS_PORT"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid REDIS_PORT %q: %w", v, err)
			}
			port = p
		}
		db := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			d, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
			}
			db = d
		}
		cfg.Redis = &RedisConfig{
			Host:     host,
			Port:     port,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
