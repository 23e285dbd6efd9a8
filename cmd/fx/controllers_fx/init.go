package controllers_fx

import (
	"go.uber.org/fx"

	"thisorthat/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewDesignController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewResultsController),
	fx.Provide(controllers.NewAdminController))
