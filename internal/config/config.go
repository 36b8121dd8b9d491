package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is everything the console reads from the environment. JWT_SECRET
// is consumed directly by the security package.
type Config struct {
	RemoteBaseURL    string
	AppHost          string
	RemoteTimeout    time.Duration
	CORSAllowOrigins []string
}

func Load() (Config, error) {
	cfg := Config{
		RemoteBaseURL: strings.TrimRight(os.Getenv("ARKAN_REMOTE_BASE_URL"), "/"),
		AppHost:       os.Getenv("APP_HOST"),
		RemoteTimeout: 30 * time.Second,
	}

	if cfg.RemoteBaseURL == "" {
		return Config{}, fmt.Errorf("ARKAN_REMOTE_BASE_URL is required")
	}
	if cfg.AppHost == "" {
		cfg.AppHost = ":8080"
	}

	// REMOTE_TIMEOUT takes a duration ("30s") or bare seconds ("30").
	if raw := os.Getenv("REMOTE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			seconds, intErr := strconv.Atoi(raw)
			if intErr != nil || seconds <= 0 {
				return Config{}, fmt.Errorf("invalid REMOTE_TIMEOUT %q: %w", raw, err)
			}
			timeout = time.Duration(seconds) * time.Second
		}
		cfg.RemoteTimeout = timeout
	}

	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}

	return cfg, nil
}
