package opentelemetry

import "time"

const (
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

type Config struct {
	Enabled        bool              `mapstructure:"enabled" default:"false"`
	ServiceName    string            `mapstructure:"service_name" default:"approvals"`
	ServiceVersion string            `mapstructure:"service_version"`
	Labels         map[string]string `mapstructure:"labels"`
	// Exporter receives traces, either stdout or otlp
	Exporter string `mapstructure:"exporter" default:"stdout"`
	// MetricExporter is otlp or prometheus. Prometheus metrics are served on the http server's /metrics.
	MetricExporter string `mapstructure:"metric_exporter" default:"otlp"`
	OTLP           struct {
		Headers  map[string]string `mapstructure:"headers"`
		Endpoint string            `mapstructure:"endpoint" default:"127.0.0.1:4317"`
	} `mapstructure:"otlp"`
	// SamplingFraction is the percentage of traces kept, 0 keeps everything
	SamplingFraction int           `mapstructure:"sampling_fraction"`
	MetricInterval   time.Duration `mapstructure:"metric_interval" default:"15s"`
}
