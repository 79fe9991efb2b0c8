package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr         string
	DatabasePath string

	AppEnv string

	// GameCallTimeout bounds how long a caller waits for a game worker's
	// reply. GameQueueSize bounds each worker's command channel.
	GameCallTimeout time.Duration
	GameQueueSize   int

	WSAllowedOrigins      []string
	DevWebSocketsAllowAll bool
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Addr:            os.Getenv("BACKEND_ADDR"),
		DatabasePath:    os.Getenv("DATABASE_PATH"),
		AppEnv:          strings.TrimSpace(os.Getenv("APP_ENV")),
		GameCallTimeout: 5 * time.Second,
		GameQueueSize:   16,
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	if v := os.Getenv("GAME_CALL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.GameCallTimeout = time.Duration(n) * time.Millisecond
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid GAME_CALL_TIMEOUT_MS=%q, using default %s\n", v, cfg.GameCallTimeout)
		}
	}
	if v := os.Getenv("GAME_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GameQueueSize = n
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid GAME_QUEUE_SIZE=%q, using default %d\n", v, cfg.GameQueueSize)
		}
	}

	if v := os.Getenv("WS_ALLOWED_ORIGINS"); v != "" {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.WSAllowedOrigins = append(cfg.WSAllowedOrigins, p)
			}
		}
	}
	if v := strings.TrimSpace(os.Getenv("DEV_WEBSOCKETS_ALLOW_ALL")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DevWebSocketsAllowAll = b
		}
	}

	var missing []string
	if cfg.DatabasePath == "" {
		missing = append(missing, "DATABASE_PATH")
	}
	// BACKEND_ADDR is optional if PORT is set by the hosting environment.
	if cfg.Addr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			if strings.Contains(port, ":") {
				cfg.Addr = port
			} else {
				cfg.Addr = ":" + port
			}
		}
	}
	if cfg.Addr == "" {
		missing = append(missing, "BACKEND_ADDR (or PORT)")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing/invalid env: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
