package config

import "time"

const (
	envPort     = "PORT"
	envProvider = "PROVIDER"
	envSeason   = "SEASON"

	envStatsBaseURL  = "NBA_STATS_BASE_URL"
	envStatsTimeout  = "NBA_STATS_TIMEOUT"
	envStatsDelay    = "NBA_STATS_REQUEST_DELAY"
	envStatsAttempts = "NBA_STATS_MAX_ATTEMPTS"

	envSnapshotDir = "SNAPSHOT_DIR"
	envRosterTTL   = "ROSTER_TTL"
	envJourneyTTL  = "JOURNEY_TTL"

	envJourneyProbeDelay = "JOURNEY_PROBE_DELAY"
	envJourneyCandidates = "JOURNEY_MAX_CANDIDATES"

	envDatabaseURL = "DATABASE_URL"
	envDBHost      = "DB_HOST"
	envDBPort      = "DB_PORT"
	envDBUser      = "DB_USER"
	envDBPassword  = "DB_PASSWORD"
	envDBName      = "DB_NAME"
	envDBSSLMode   = "DB_SSLMODE"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envCORSOrigins = "CORS_ALLOWED_ORIGINS"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	defaultSeason   = "2025-26"

	defaultStatsBaseURL  = "https://stats.nba.com/stats"
	defaultStatsTimeout  = 30 * Duration(time.Second)
	defaultStatsDelay    = 600 * Duration(time.Millisecond)
	defaultStatsAttempts = 3

	defaultSnapshotDir = "data/snapshots"
	defaultRosterTTL   = 24 * Duration(time.Hour)
	defaultJourneyTTL  = 7 * 24 * Duration(time.Hour)

	defaultJourneyProbeDelay = 300 * Duration(time.Millisecond)
	defaultJourneyCandidates = 100

	defaultDBPort    = 5432
	defaultDBSSLMode = "disable"

	defaultMetricsPort = "9090"
	defaultServiceName = "garu-data-service"

	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"https://garu.vercel.app",
}
