package di

import (
	"context"
	"fmt"
	"strings"
	"time"

	"BondRV/internal/domain/models"
	domrepo "BondRV/internal/domain/repository"
	domsvc "BondRV/internal/domain/service"
	"BondRV/internal/handler/api"
	internalrepo "BondRV/internal/repository"
	"BondRV/internal/service/gemini"
	"BondRV/internal/usecase"
	"BondRV/pkg/cache"
	"BondRV/pkg/config"
	pkgkafka "BondRV/pkg/kafka"
	xlogger "BondRV/pkg/logger"
	"BondRV/pkg/metrics"
	"BondRV/pkg/server"
)

// ProvideLogger builds the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	l, err := xlogger.New(&xlogger.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideFallbackBundle materializes the static configuration into the
// immutable bottom layer of every reconciliation, flattening the grouped
// fair-curve tables onto composite CCY_SECTOR_RATING keys.
func ProvideFallbackBundle(cfg *config.Config) models.MarketDataBundle {
	fb := cfg.Fallback

	curves := make(map[string]float64)
	for group, byRating := range fb.FairCurves {
		for rating, y := range byRating {
			curves[strings.ToUpper(group+"_"+rating)] = y
		}
	}

	sofr := make(map[string]models.SOFRTenorPoint, len(fb.SOFRSpreads))
	for tenor, pt := range fb.SOFRSpreads {
		sofr[tenor] = models.SOFRTenorPoint{
			TreasuryRate: pt.TreasuryRate,
			TSOFRSpread:  pt.TSOFRSpread,
		}
	}

	bench := make(map[string]float64, len(fb.BenchmarkRates))
	for k, v := range fb.BenchmarkRates {
		bench[strings.ToUpper(k)] = v
	}
	funding := make(map[string]float64, len(fb.FundingRates))
	for k, v := range fb.FundingRates {
		funding[strings.ToUpper(k)] = v
	}

	return models.MarketDataBundle{
		BenchmarkRates: bench,
		FundingRates:   funding,
		FairCurves:     curves,
		SOFRSpreads:    sofr,
	}
}

// ProvideCache selects the snapshot cache backend.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideGeminiClient builds the shared Gemini REST client.
func ProvideGeminiClient(cfg *config.Config) *gemini.Client {
	timeout := cfg.Gemini.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, timeout)
}

// ProvideIngestion creates the spreadsheet ingestion adapter.
func ProvideIngestion(client *gemini.Client, logger *xlogger.Logger) domsvc.IngestionAdapter {
	return gemini.NewIngestion(client, logger)
}

// ProvideRealtime creates the realtime market data provider, or nil when
// realtime fetching is disabled; the resolver degrades to file/config layers.
func ProvideRealtime(cfg *config.Config, client *gemini.Client, c cache.Service, logger *xlogger.Logger) domsvc.RealtimeProvider {
	if !cfg.Realtime.Enabled {
		return nil
	}
	ttl := cfg.Realtime.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return gemini.NewRealtime(client, c, ttl, logger)
}

// ProvideKafkaProducer creates the Kafka producer, or nil when event
// publishing is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher wraps the producer as an assessment event publisher.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) domrepo.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideResolver creates the market data resolver use case.
func ProvideResolver(realtime domsvc.RealtimeProvider, fallback models.MarketDataBundle, m domrepo.Metrics, logger *xlogger.Logger) *usecase.MarketDataResolver {
	return usecase.NewMarketDataResolver(realtime, fallback, m, logger)
}

// ProvideAnalyzer creates the relative value analyzer use case.
func ProvideAnalyzer(m domrepo.Metrics, pub domrepo.Publisher, logger *xlogger.Logger) *usecase.Analyzer {
	return usecase.NewAnalyzer(m, pub, logger)
}

// ProvideHandler creates the Echo handler.
func ProvideHandler(
	logger *xlogger.Logger,
	analyzer *usecase.Analyzer,
	resolver *usecase.MarketDataResolver,
	ingestion domsvc.IngestionAdapter,
	cfg *config.Config,
) *api.AnalysisHandler {
	return api.NewAnalysisHandler(logger, analyzer, resolver, ingestion, cfg.Sources)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.AnalysisHandler, producer *pkgkafka.Producer, logger *xlogger.Logger) *server.App {
	return server.New(cfg, handler, producer, logger)
}
