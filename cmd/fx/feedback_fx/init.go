package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"thisorthat/internal/repositories"
	"thisorthat/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	resultRepo repositories.ResultRepositoryInterface,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, resultRepo)
}
