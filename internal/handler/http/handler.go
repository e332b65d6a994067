package http

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// clientBaseURL is the web client root the confirm-email endpoint
	// redirects to.
	clientBaseURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		validator:     validators.NewRequestValidator(),
		clientBaseURL: cfg.ClientBaseURL,
		logger:        logger,
	}
}
