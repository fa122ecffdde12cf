package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envProvider        = "PROVIDER"
	envSeason          = "SEASON"
	envEspnSiteBaseURL = "ESPN_SITE_BASE_URL"
	envEspnCoreBaseURL = "ESPN_CORE_BASE_URL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort = "4000"
	// Conservative default poll interval; the scoreboard rarely changes faster.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultSeason       = 2023
	defaultMetricsPort  = "9090"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
)
