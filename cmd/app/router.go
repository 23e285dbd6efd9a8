package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"thisorthat/internal/api/controllers"
	"thisorthat/internal/config"
	"thisorthat/internal/metrics"
	"thisorthat/pkg/middleware"
	"thisorthat/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
	Validator middleware.TokenValidator

	Health  *controllers.HealthController
	Designs *controllers.DesignController
	Tags    *controllers.TagController
	Quiz    *controllers.QuizController
	Results *controllers.ResultsController
	Admin   *controllers.AdminController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger.Named("http"), p.Metrics))
	r.Use(middleware.CORSMiddleware(p.Config.Server.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", p.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	designsGroup := r.Group("/designs")
	designsGroup.GET("", p.Designs.ListDesigns)
	designsGroup.GET("/:id", p.Designs.GetDesign)

	r.GET("/tags", p.Tags.ListTagsHandler)

	quizGroup := r.Group("/quiz/sessions")
	quizGroup.POST("", p.Quiz.StartSession)
	quizGroup.GET("/:id", p.Quiz.GetSession)
	quizGroup.POST("/:id/choices", p.Quiz.Choose)
	quizGroup.GET("/:id/results", p.Quiz.GetResults)
	quizGroup.POST("/:id/results", p.Quiz.SaveResults)

	resultsGroup := r.Group("/results")
	resultsGroup.GET("/:id", p.Results.GetResult)
	resultsGroup.POST("/:id/feedback", p.Results.AddFeedback)
	resultsGroup.GET("/:id/feedback", p.Results.ListFeedback)

	r.POST("/profiles/analyze", p.Results.Analyze)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/login", p.Admin.Login)
	adminGroup.POST("/designs/import",
		middleware.JWTAuthMiddleware(p.Validator),
		middleware.RoleMiddleware(utils.RoleAdmin),
		p.Admin.ImportDesigns)
}
