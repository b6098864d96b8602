package config

const (
	envSquiggleBaseURL   = "SQUIGGLE_BASE_URL"
	envSquiggleImageBase = "SQUIGGLE_IMAGE_BASE_URL"
	envSquiggleUserAgent = "SQUIGGLE_USER_AGENT"

	defaultSquiggleBaseURL   = "https://api.squiggle.com.au"
	defaultSquiggleImageBase = "https://squiggle.com.au"
	defaultSquiggleUserAgent = "afl-teams-service (+https://github.com/preston-bernstein/afl-teams-service)"
)

// SquiggleConfig controls how we talk to the Squiggle API.
type SquiggleConfig struct {
	BaseURL      string
	ImageBaseURL string
	UserAgent    string
}

func loadSquiggle() SquiggleConfig {
	return SquiggleConfig{
		BaseURL:      envOrDefault(envSquiggleBaseURL, defaultSquiggleBaseURL),
		ImageBaseURL: envOrDefault(envSquiggleImageBase, defaultSquiggleImageBase),
		UserAgent:    envOrDefault(envSquiggleUserAgent, defaultSquiggleUserAgent),
	}
}
