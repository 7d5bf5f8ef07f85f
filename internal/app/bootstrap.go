package app

import (
	"fmt"
	"log/slog"

	"wholesale_go/internal/catalog"
	"wholesale_go/internal/domain"
	"wholesale_go/internal/estimator"
	"wholesale_go/internal/infra"
	"wholesale_go/internal/infra/storage"
	"wholesale_go/internal/service"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config    *infra.Config
	Catalog   *catalog.Catalog
	Estimator *estimator.Estimator
	Service   *service.EstimateService
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads config, sets up logging and builds the estimator from the configured catalog
func (b *Bootstrap) Initialize(configPath string) error {
	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	slog.SetDefault(infra.NewLogger(cfg))
	slog.Debug("🚀 Bootstrapping wholesale estimator...", slog.String("source", cfg.Catalog.Source))

	// 3. Load Market Catalog
	profiles, err := LoadProfiles(cfg)
	if err != nil {
		return err
	}
	b.Catalog = catalog.New(profiles)
	slog.Debug("✅ Market catalog loaded", slog.Int("markets", b.Catalog.Len()))

	// 4. Estimator & Service
	b.Estimator = estimator.New(b.Catalog)
	b.Service = service.NewEstimateService(b.Estimator, infra.GlobalMetrics, slog.Default())

	return nil
}

// LoadProfiles reads market profiles from the source named in cfg
func LoadProfiles(cfg *infra.Config) (map[string]domain.MarketProfile, error) {
	switch cfg.Catalog.Source {
	case infra.SourceBundled:
		return catalog.LoadBundled()
	case infra.SourceFile:
		return catalog.LoadFile(cfg.Catalog.Path)
	case infra.SourceSQLite:
		store, err := storage.NewStorage(cfg.Catalog.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		profiles, err := store.LoadProfiles()
		if err != nil {
			return nil, fmt.Errorf("failed to load markets from %s: %w", cfg.Catalog.DBPath, err)
		}
		if len(profiles) == 0 {
			return nil, fmt.Errorf("no markets in %s; run seedmarkets first", cfg.Catalog.DBPath)
		}
		for _, p := range profiles {
			if err := catalog.ValidateProfile(p); err != nil {
				return nil, fmt.Errorf("%s: %w", cfg.Catalog.DBPath, err)
			}
		}
		return profiles, nil
	default:
		return nil, &domain.ConfigError{Field: "catalog.source", Err: fmt.Errorf("unknown source %q", cfg.Catalog.Source)}
	}
}
