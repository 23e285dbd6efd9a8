package memcache_fx

import (
	"go.uber.org/fx"

	"thisorthat/internal/config"
	"thisorthat/internal/services"
	mem "thisorthat/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(cfg *config.Config) (mem.Store[services.QuizSession], error) {
	return mem.NewTTLStore[services.QuizSession](cfg.Quiz.MaxSessions, cfg.Quiz.SessionTTL)
}
