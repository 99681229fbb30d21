package service

import (
	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
)

type Services struct {
	AuthService     AuthService
	TokenService    TokenService
	UserService     UserService
	QuestionService QuestionService
	AppInfoService  AppInfoService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		TokenService:    NewTokenService(repositories.TokenBlacklistRepository, cfg.Auth, logger),
		UserService:     NewUserService(repositories.UserRepository, cfg.Auth, logger),
		QuestionService: NewQuestionService(repositories.QuestionRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
