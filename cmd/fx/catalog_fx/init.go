package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thisorthat/internal/config"
	"thisorthat/internal/dataset"
	"thisorthat/internal/metrics"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		provideNormalizer,
		provideLoader,
		provideDesignRepo,
		provideCatalogService,
	),
	fx.Invoke(registerCatalogLoad),
)

func provideNormalizer(cfg *config.Config, logger *zap.Logger) (*preference.Normalizer, error) {
	rules, err := preference.LoadRuleSet(cfg.Dataset.RulesPath)
	if err != nil {
		return nil, err
	}
	logger.Info("tag rules loaded", zap.String("version", rules.Version), zap.Int("rules", len(rules.Rules)))
	return preference.NewNormalizer(rules), nil
}

func provideLoader(normalizer *preference.Normalizer, logger *zap.Logger) *dataset.Loader {
	return dataset.NewLoader(normalizer, logger.Named("dataset"))
}

func provideDesignRepo(db *gorm.DB) repositories.DesignRepositoryInterface {
	return repositories.NewDesignRepository(db)
}

func provideCatalogService(
	designRepo repositories.DesignRepositoryInterface,
	loader *dataset.Loader,
	m *metrics.Metrics,
	logger *zap.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(designRepo, loader, m, logger)
}

// registerCatalogLoad seeds an empty store from the configured dataset and
// loads the first catalog snapshot before the server starts.
func registerCatalogLoad(lc fx.Lifecycle, catalog services.CatalogServiceInterface, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return catalog.SeedIfEmpty(ctx, cfg.Dataset.Path)
		},
	})
}
