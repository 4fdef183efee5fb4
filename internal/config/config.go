package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultBackendURL = "http://localhost:5000"

type AppConfig struct {
	Port        string
	BackendURL  string
	DatabaseURL string
	LogLevel    string
	// RefreshOnCreate makes a successful create invalidate the cached
	// directory so the next list view reloads.
	RefreshOnCreate bool
}

// Load reads the environment (and .env if present). defaultPort is used
// when PORT is unset, so each binary keeps its own default.
func Load(defaultPort string) AppConfig {
	_ = godotenv.Load() // load .env if present

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	backend := strings.TrimRight(os.Getenv("BACKEND_URL"), "/")
	if backend == "" {
		backend = DefaultBackendURL
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	refresh := true
	if v := os.Getenv("DIRECTORY_REFRESH_ON_CREATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			refresh = b
		}
	}

	return AppConfig{
		Port:            port,
		BackendURL:      backend,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        logLevel,
		RefreshOnCreate: refresh,
	}
}
