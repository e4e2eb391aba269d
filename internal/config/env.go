package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "PAGESTRIP_"

// LoadEnv reads dotenv files into the process environment. Missing files
// are skipped and variables already set are not overridden.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides settings from PAGESTRIP_* variables found by lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("SERVER_URL", &c.Server.URL)
	str("TOKEN", &c.Server.Token)
	str("USER_ID", &c.Server.UserID)
	str("LANGUAGE", &c.UI.Language)
	str("LOG_LEVEL", &c.UI.LogLevel)

	if v, ok := lookup(envPrefix + "FULLSCREEN"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.Fullscreen = b
		}
	}
}
