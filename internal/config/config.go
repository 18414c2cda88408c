package config

// Config holds runtime configuration for the server and the sync command.
type Config struct {
	Port     string
	Provider string
	Season   string
	NBAStats NBAStatsConfig
	Cache    CacheConfig
	Journey  JourneyConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

// CacheConfig controls the local snapshot tier.
type CacheConfig struct {
	SnapshotDir string
	RosterTTL   Duration
	JourneyTTL  Duration
}

// JourneyConfig controls career reconstruction batches.
type JourneyConfig struct {
	ProbeDelay    Duration
	MaxCandidates int
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Season:   envOrDefault(envSeason, defaultSeason),
		NBAStats: loadNBAStats(),
		Cache: CacheConfig{
			SnapshotDir: envOrDefault(envSnapshotDir, defaultSnapshotDir),
			RosterTTL:   durationEnvOrDefault(envRosterTTL, defaultRosterTTL),
			JourneyTTL:  durationEnvOrDefault(envJourneyTTL, defaultJourneyTTL),
		},
		Journey: JourneyConfig{
			ProbeDelay:    durationEnvOrDefault(envJourneyProbeDelay, defaultJourneyProbeDelay),
			MaxCandidates: intEnvOrDefault(envJourneyCandidates, defaultJourneyCandidates),
		},
		Database: loadDatabase(),
		Metrics:  loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		CORS: CORSConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		},
	}
}
