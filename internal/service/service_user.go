package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

type userService struct {
	identityService IdentityService

	logger *logger.Logger
}

func NewUserService(identityService IdentityService, logger *logger.Logger) UserService {
	return &userService{
		identityService: identityService,
		logger:          logger,
	}
}

func (s *userService) GetCurrentUser(ctx context.Context, principal models.Token) (*models.CurrentUser, error) {
	log := logger.FromContext(ctx)

	user, err := s.identityService.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Debug().Str("user_id", principal.UserID).Msg("principal refers to a missing user")
			return nil, nil
		}
		return nil, err
	}

	// sessions issued before a password reset carry the old stamp
	if principal.SecurityStamp != user.SecurityStamp {
		log.Debug().Str("user_id", user.ID).Msg("principal security stamp is stale")
		return nil, nil
	}

	roles, err := s.identityService.GetRoles(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.CurrentUser{
		Username: user.UserName,
		Email:    user.Email,
		Role:     roles,
	}, nil
}
