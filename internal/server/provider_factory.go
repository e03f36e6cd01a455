package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.DataConfig) (dataSource, error) {
	src, err := selectProvider(cfg, f.logger)
	if err != nil {
		return dataSource{}, err
	}
	src.provider = f.wrap(src.name, src.provider)
	return src, nil
}

func (f providerFactory) wrap(name string, provider providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(provider, name, f.logger, f.metrics)
}
