package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailAdapter adapter.MailAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	identityService := NewIdentityService(
		storages.UserRepository,
		storages.RoleRepository,
		crypto.NewPasswordHasher(cfg.App.PasswordHashCost),
		crypto.NewTokenProvider(cfg.App.TokenSignKey, cfg.App.EmailTokenLifespan),
		logger,
	)
	notificationService := NewNotificationService(mailAdapter, cfg.App, logger)

	return &Services{
		AuthService:    NewAuthService(identityService, notificationService, cfg.App, logger),
		UserService:    NewUserService(identityService, logger),
		AppInfoService: appInfoService,
	}, nil
}
