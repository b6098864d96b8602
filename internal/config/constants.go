package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envSeasons          = "SEASONS"
	envUpstreamTimeout  = "UPSTREAM_TIMEOUT"
	envUpstreamInterval = "UPSTREAM_MIN_INTERVAL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort        = "4000"
	defaultProvider    = "squiggle"
	defaultMetricsPort = "9090"
	defaultServiceName = "afl-teams-service"
	defaultSeasons     = "2021,2022"

	defaultUpstreamTimeout = 10 * Duration(time.Second)
	// Zero disables the minimum spacing between upstream calls.
	defaultUpstreamInterval = Duration(0)
)
