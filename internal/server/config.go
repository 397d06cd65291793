package server

import (
	"os"
	"strings"
)

// Config holds HTTP server settings, read from the environment.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// AllowOrigins are the CORS origins permitted to call the API.
	AllowOrigins []string
}

// ConfigFromEnv builds a Config from VISUALEARN_* variables with
// development defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr: ":8000",
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
	}

	if addr := os.Getenv("VISUALEARN_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if origins := os.Getenv("VISUALEARN_ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = cfg.AllowOrigins[:0]
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	return cfg
}
