package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the game.
type Config struct {
	// DBPath overrides the default database location when non-empty.
	DBPath string
	// PlayerName is shown on the home screen and in shared scores.
	PlayerName string
	// SoundEnabled toggles the terminal-bell sound effects.
	SoundEnabled bool
	// AdsEnabled toggles the simulated reward-video offers.
	AdsEnabled bool
	// SnapshotKeep is how many profile snapshots to retain.
	SnapshotKeep int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the game still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DBPath:       envOr("MATHQUEST_DB", ""),
		PlayerName:   envOr("MATHQUEST_PLAYER", "Captain"),
		SoundEnabled: envBoolOr("MATHQUEST_SOUND", true),
		AdsEnabled:   envBoolOr("MATHQUEST_ADS", false),
		SnapshotKeep: envIntOr("MATHQUEST_SNAPSHOT_KEEP", 20),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
