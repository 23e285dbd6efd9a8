package auth_fx

import (
	"crypto/rand"
	"encoding/hex"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"thisorthat/internal/config"
	"thisorthat/internal/services"
	"thisorthat/pkg/middleware"
	"thisorthat/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideTokenValidator, provideAuthService)

// provideTokenIssuer falls back to a per-process secret when JWT_SECRET is
// unset; tokens then stop validating after a restart.
func provideTokenIssuer(cfg *config.Config, logger *zap.Logger) (*utils.TokenIssuer, error) {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		secret = hex.EncodeToString(buf)
		logger.Warn("JWT_SECRET not set, using an ephemeral signing secret")
	}
	return utils.NewTokenIssuer(secret, cfg.Auth.TokenTTL)
}

func provideTokenValidator(issuer *utils.TokenIssuer) middleware.TokenValidator {
	return issuer
}

func provideAuthService(cfg *config.Config, issuer *utils.TokenIssuer, logger *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(cfg.Auth, issuer, logger)
}
