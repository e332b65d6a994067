package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// It drives registration, login, email confirmation and password reset on
// top of an IdentityService, and mails links through a NotificationService.
type authService struct {
	identityService     IdentityService
	notificationService NotificationService

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. Session tokens are signed with
// cfg.TokenSignKey and issued by cfg.APIBaseURL.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(identityService IdentityService, notificationService NotificationService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		identityService:     identityService,
		notificationService: notificationService,
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.APIBaseURL,
		logger:              logger,
	}
}

// SignUp registers a new account in the GeneralUser role and mails it a
// confirmation link.
//
// Results:
//   - 400 if the email is taken.
//   - 500 if the account could not be created (the password policy reason is
//     not disclosed).
//   - 200 once the confirmation email was handed to the provider.
func (a *authService) SignUp(ctx context.Context, email, password string) (models.Result, error) {
	log := logger.FromContext(ctx)

	_, err := a.identityService.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.NewMessageResult(http.StatusBadRequest, app.MsgAccountAlreadyExists), nil
	case !errors.Is(err, ErrUserNotFound):
		return models.Result{}, err
	}

	user, err := a.identityService.Create(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			return models.NewMessageResult(http.StatusBadRequest, app.MsgAccountAlreadyExists), nil
		case errors.Is(err, ErrPasswordPolicy):
			log.Info().Err(err).Msg("sign up rejected by password policy")
			return models.NewMessageResult(http.StatusInternalServerError, app.MsgSignUpFailed), nil
		default:
			return models.Result{}, err
		}
	}

	if err = a.identityService.AddToRole(ctx, user, models.RoleGeneralUser); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("assigning default role failed")
		return models.Result{}, err
	}

	if err = a.sendConfirmation(ctx, user); err != nil {
		return models.Result{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return models.NewMessageResult(http.StatusOK, app.MsgSignedUp), nil
}

// Login checks the credentials and issues a session token valid for
// utils.SessionTokenDuration.
//
// An unknown email and a wrong password produce the same 404 result. Valid
// credentials of an unconfirmed account produce 400 and no token.
func (a *authService) Login(ctx context.Context, email, password string) (models.Result, error) {
	badCredentials := models.NewMessageResult(http.StatusNotFound, app.MsgBadCredentials)

	user, err := a.identityService.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return badCredentials, nil
		}
		return models.Result{}, err
	}

	ok, err := a.identityService.CheckPassword(ctx, user, password)
	if err != nil {
		return models.Result{}, err
	}
	if !ok {
		return badCredentials, nil
	}

	if !user.EmailConfirmed {
		return models.NewMessageResult(http.StatusBadRequest, app.MsgConfirmEmailFirst), nil
	}

	roles, err := a.identityService.GetRoles(ctx, user)
	if err != nil {
		return models.Result{}, err
	}

	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, roles, a.tokenSignKey)
	if err != nil {
		return models.Result{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Result{
		StatusCode: http.StatusOK,
		Response:   models.TokenResponse{Token: token.SignedString},
	}, nil
}

// ConfirmEmail decodes token and confirms the email of userID. Any rejection,
// including an unknown user, yields 400 "Invalid token".
func (a *authService) ConfirmEmail(ctx context.Context, userID, token string) (models.Result, error) {
	invalidToken := models.NewMessageResult(http.StatusBadRequest, app.MsgInvalidToken)

	user, err := a.identityService.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return invalidToken, nil
		}
		return models.Result{}, err
	}

	decoded, err := utils.Base64URLDecode(token)
	if err != nil {
		return invalidToken, nil
	}

	if err = a.identityService.ConfirmEmail(ctx, user, decoded); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return invalidToken, nil
		}
		return models.Result{}, err
	}

	return models.NewMessageResult(http.StatusOK, app.MsgEmailConfirmed), nil
}

// ResendConfirmEmailLink mails a fresh confirmation link. Unknown emails
// yield 404.
func (a *authService) ResendConfirmEmailLink(ctx context.Context, email string) (models.Result, error) {
	user, err := a.identityService.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.NewMessageResult(http.StatusNotFound, app.MsgEmailNotFound), nil
		}
		return models.Result{}, err
	}

	if err = a.sendConfirmation(ctx, user); err != nil {
		return models.Result{}, err
	}

	return models.NewMessageResult(http.StatusOK, app.MsgConfirmationResent), nil
}

// SendPasswordResetLink mails a reset link. Unknown emails yield 404.
func (a *authService) SendPasswordResetLink(ctx context.Context, email string) (models.Result, error) {
	user, err := a.identityService.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.NewMessageResult(http.StatusNotFound, app.MsgNoUserForEmail), nil
		}
		return models.Result{}, err
	}

	token, err := a.identityService.GeneratePasswordResetToken(ctx, user)
	if err != nil {
		return models.Result{}, err
	}

	if err = a.notificationService.SendForgotPasswordMail(ctx, user.ID, user.Email, utils.Base64URLEncode(token)); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("sending reset email failed")
		return models.Result{}, err
	}

	return models.NewMessageResult(http.StatusOK, app.MsgPasswordResetLinkSent), nil
}

// ResetPassword sets newPassword for userID if token is accepted. An unknown
// user, an undecodable or rejected token and a policy violation all yield
// 400 "Invalid token".
func (a *authService) ResetPassword(ctx context.Context, userID, token, newPassword string) (models.Result, error) {
	invalidToken := models.NewMessageResult(http.StatusBadRequest, app.MsgInvalidToken)

	user, err := a.identityService.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return invalidToken, nil
		}
		return models.Result{}, err
	}

	decoded, err := utils.Base64URLDecode(token)
	if err != nil {
		return invalidToken, nil
	}

	if err = a.identityService.ResetPassword(ctx, user, decoded, newPassword); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return invalidToken, nil
		}
		return models.Result{}, err
	}

	logger.FromContext(ctx).Info().Str("user_id", user.ID).Msg("password reset")
	return models.NewMessageResult(http.StatusOK, app.MsgPasswordReset), nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) sendConfirmation(ctx context.Context, user models.User) error {
	token, err := a.identityService.GenerateEmailConfirmationToken(ctx, user)
	if err != nil {
		return err
	}

	if err = a.notificationService.SendEmailConfirmationMail(ctx, user.ID, user.Email, utils.Base64URLEncode(token)); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("sending confirmation email failed")
		return err
	}

	return nil
}
