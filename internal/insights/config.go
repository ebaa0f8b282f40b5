package insights

// Config holds personalized insight generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxTips     int
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   700,
		Temperature: 0.4,
		MaxTips:     4,
	}
}
