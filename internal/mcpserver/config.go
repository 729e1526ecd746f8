package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Casing defaults applied when a tool call omits the flag.
	TrimLeadingSpaces   bool
	UppercaseAsAcronyms bool

	// Request limits.
	MaxBatch      int
	MaxInputBytes int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TEXTCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		TrimLeadingSpaces:   envBool("TEXTCASE_TRIM_LEADING_SPACES", true),
		UppercaseAsAcronyms: envBool("TEXTCASE_UPPERCASE_AS_ACRONYMS", true),
		MaxBatch:            envInt("TEXTCASE_MAX_BATCH", 100),
		MaxInputBytes:       envInt("TEXTCASE_MAX_INPUT_BYTES", 1<<20),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
