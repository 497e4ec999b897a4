package http

import (
	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/service"
)

type Handler struct {
	services *service.Services

	// version is reported by the version endpoint.
	version string

	// rateLimit configures the per-client fixed-window limiter.
	rateLimit config.RateLimit

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		version:   cfg.App.Version,
		rateLimit: cfg.RateLimit,
		logger:    logger,
	}
}
