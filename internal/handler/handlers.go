package handler

import (
	"github.com/MKhiriev/share-favorites/internal/config"
	"github.com/MKhiriev/share-favorites/internal/handler/http"
	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

// Handlers groups the transport handlers of the tube hub.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(buildInfo, http.DefaultStreamConfig(), logger),
	}, nil
}
