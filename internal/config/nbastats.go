package config

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL      string
	Timeout      Duration
	RequestDelay Duration
	MaxAttempts  int
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:      envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout:      durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		RequestDelay: durationEnvOrDefault(envStatsDelay, defaultStatsDelay),
		MaxAttempts:  intEnvOrDefault(envStatsAttempts, defaultStatsAttempts),
	}
}
