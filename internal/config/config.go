package config

import (
	"github.com/joho/godotenv"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port      string
	Provider  string
	Seasons   []string
	LogLevel  string
	LogFormat string
	Squiggle  SquiggleConfig
	Upstream  UpstreamConfig
	Metrics   MetricsConfig
}

// UpstreamConfig controls how hard we lean on the upstream API.
type UpstreamConfig struct {
	Timeout     Duration
	MinInterval Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; real
// environment variables always win.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Seasons:   seasonsEnvOrDefault(envSeasons, defaultSeasons),
		LogLevel:  envOrDefault(envLogLevel, ""),
		LogFormat: envOrDefault(envLogFormat, ""),
		Squiggle:  loadSquiggle(),
		Upstream: UpstreamConfig{
			Timeout:     durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
			MinInterval: nonNegativeDurationEnvOrDefault(envUpstreamInterval, defaultUpstreamInterval),
		},
		Metrics: loadMetrics(),
	}
}

// seasonsEnvOrDefault keeps only four digit years so labels cannot alter the upstream query.
// The default applies when nothing valid remains.
func seasonsEnvOrDefault(key, defaultValue string) []string {
	var out []string
	for _, label := range listEnvOrDefault(key, defaultValue) {
		if games.ValidateSeason(label) == nil {
			out = append(out, label)
		}
	}
	if len(out) == 0 {
		return splitList(defaultValue)
	}
	return out
}
