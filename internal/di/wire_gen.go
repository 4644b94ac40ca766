// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"BondRV/pkg/config"
	"BondRV/pkg/server"
)

// Injectors from wire.go:

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}
	metrics := ProvideMetrics()
	producer, err := ProvideKafkaProducer(cfg)
	if err != nil {
		return nil, err
	}
	publisher := ProvidePublisher(producer, cfg)
	analyzer := ProvideAnalyzer(metrics, publisher, logger)
	client := ProvideGeminiClient(cfg)
	service, err := ProvideCache(cfg)
	if err != nil {
		return nil, err
	}
	realtimeProvider := ProvideRealtime(cfg, client, service, logger)
	marketDataBundle := ProvideFallbackBundle(cfg)
	marketDataResolver := ProvideResolver(realtimeProvider, marketDataBundle, metrics, logger)
	ingestionAdapter := ProvideIngestion(client, logger)
	analysisHandler := ProvideHandler(logger, analyzer, marketDataResolver, ingestionAdapter, cfg)
	app := ProvideApp(cfg, analysisHandler, producer, logger)
	return app, nil
}
