package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"thisorthat/internal/config"
	"thisorthat/internal/models/request_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

// AuthService authenticates the single configured admin account.
type AuthService struct {
	cfg    config.AuthConfig
	issuer *utils.TokenIssuer
	logger *zap.Logger
}

func NewAuthService(cfg config.AuthConfig, issuer *utils.TokenIssuer, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{cfg: cfg, issuer: issuer, logger: logger.Named("auth")}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	if a.cfg.AdminEmail == "" || a.cfg.AdminPasswordHash == "" {
		a.logger.Warn("admin login attempted but no admin account is configured")
		return nil, utils.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(request.Email), a.cfg.AdminEmail) {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(a.cfg.AdminPasswordHash, request.Password); err != nil {
		a.logger.Info("admin login rejected", zap.String("email", request.Email))
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.issuer.CreateToken(a.cfg.AdminEmail, utils.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(a.issuer.TTL().Seconds()),
	}, nil
}
