//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"BondRV/pkg/config"
	"BondRV/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideFallbackBundle,
		ProvideCache,
		ProvideGeminiClient,
		ProvideIngestion,
		ProvideRealtime,
		ProvideKafkaProducer,
		ProvidePublisher,
		ProvideResolver,
		ProvideAnalyzer,
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
