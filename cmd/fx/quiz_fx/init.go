package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thisorthat/internal/config"
	"thisorthat/internal/metrics"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/internal/services"
	mem "thisorthat/pkg/memcache"
)

var Module = fx.Provide(
	provideAnalyzer,
	provideQuizService,
	provideResultRepo,
	provideResultsService,
)

func provideAnalyzer(cfg *config.Config, logger *zap.Logger) *preference.Analyzer {
	return preference.NewAnalyzer(
		preference.WithPolicy(cfg.Scoring.Policy()),
		preference.WithLogger(logger.Named("engine")),
	)
}

func provideQuizService(
	catalog services.CatalogServiceInterface,
	sessions mem.Store[services.QuizSession],
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) services.QuizServiceInterface {
	return services.NewQuizService(catalog, sessions, cfg.Quiz.Rounds, m, logger)
}

func provideResultRepo(db *gorm.DB) repositories.ResultRepositoryInterface {
	return repositories.NewResultRepository(db)
}

func provideResultsService(
	quiz services.QuizServiceInterface,
	catalog services.CatalogServiceInterface,
	analyzer *preference.Analyzer,
	resultRepo repositories.ResultRepositoryInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) services.ResultsServiceInterface {
	return services.NewResultsService(quiz, catalog, analyzer, resultRepo, m, logger)
}
