package config_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"thisorthat/internal/config"
	"thisorthat/internal/logging"
	"thisorthat/internal/metrics"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideRegistry,
	provideMetrics,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.MustNewMetrics(reg)
}
