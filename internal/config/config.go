// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Game holds the rule tunables. Phase durations are exposed for external
// timers to watch; the core never enforces them itself.
type Game struct {
	HidingPhase  time.Duration
	SeekingPhase time.Duration

	// CurseCost is the flat coin price of one curse-dice purchase.
	CurseCost int
	// MaxCursesPerRound caps curse activations per round for the hider.
	MaxCursesPerRound int
	// StartingCoins is the balance a hider starts a round with when its
	// carried-over balance is zero.
	StartingCoins int

	// DefaultAdminPIN is accepted for the admin role while no admin PIN has
	// ever been configured.
	DefaultAdminPIN string
}

// FromEnv builds the game config from environment variables, falling back to
// the standard rule set.
func FromEnv() Game {
	return Game{
		HidingPhase:       time.Duration(getEnvInt("HS_HIDING_PHASE_MIN", 30)) * time.Minute,
		SeekingPhase:      time.Duration(getEnvInt("HS_SEEKING_PHASE_MIN", 60)) * time.Minute,
		CurseCost:         getEnvInt("HS_CURSE_COST", 50),
		MaxCursesPerRound: getEnvInt("HS_MAX_CURSES_PER_ROUND", 3),
		StartingCoins:     getEnvInt("HS_STARTING_COINS", 0),
		DefaultAdminPIN:   getEnv("HS_DEFAULT_ADMIN_PIN", "1234"),
	}
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
