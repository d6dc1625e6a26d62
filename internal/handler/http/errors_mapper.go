package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/internal/utils"
	"github.com/MKhiriev/share-favorites/models"
)

type errorMapping struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorMapping{
	ErrEmptyPeer:          {http.StatusBadRequest, models.ErrCodeBadRequest},
	ErrInvalidRequestBody: {http.StatusBadRequest, models.ErrCodeBadRequest},

	transport.ErrEmptyService:    {http.StatusBadRequest, models.ErrCodeBadRequest},
	transport.ErrSessionNotFound: {http.StatusNotFound, models.ErrCodeSessionNotFound},
	transport.ErrPeerNotFound:    {http.StatusNotFound, models.ErrCodePeerNotFound},
	transport.ErrTubeNotFound:    {http.StatusNotFound, models.ErrCodeTubeNotFound},
	transport.ErrPeerExists:      {http.StatusConflict, models.ErrCodePeerExists},
	transport.ErrNotTubeMember:   {http.StatusForbidden, models.ErrCodeNotTubeMember},
}

func mappingFromError(err error) errorMapping {
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping
		}
	}
	return errorMapping{http.StatusInternalServerError, models.ErrCodeInternal}
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapping := mappingFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if mapping.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", mapping.status).Msg("request failed")

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error(), Code: mapping.code}, mapping.status)
}
