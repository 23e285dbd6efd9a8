package tagsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"thisorthat/internal/api/controllers"
	"thisorthat/internal/repositories"
	"thisorthat/internal/services"
)

// Module serves the tag vocabulary endpoint from the design_tags table.
var Module = fx.Options(
	fx.Provide(provideTagRepository, provideTagService),
	fx.Provide(controllers.NewTagController),
)

func provideTagRepository(db *gorm.DB) repositories.TagRepositoryInterface {
	return repositories.NewTagRepository(db)
}

func provideTagService(repo repositories.TagRepositoryInterface) services.TagServiceInterface {
	return services.NewTagService(repo)
}
