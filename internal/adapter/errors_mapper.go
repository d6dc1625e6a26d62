package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

var errorCodeMap = map[string]error{
	models.ErrCodeBadRequest:      ErrBadRequest,
	models.ErrCodeSessionNotFound: transport.ErrSessionNotFound,
	models.ErrCodePeerNotFound:    transport.ErrPeerNotFound,
	models.ErrCodePeerExists:      transport.ErrPeerExists,
	models.ErrCodeTubeNotFound:    transport.ErrTubeNotFound,
	models.ErrCodeNotTubeMember:   transport.ErrNotTubeMember,
	models.ErrCodeInternal:        ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	return mapHubError(resp.StatusCode(), resp.Body())
}

// mapHubError prefers the error code of a hub [models.ErrorResponse] and
// falls back to the status code.
func mapHubError(status int, rawBody []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(rawBody))

	var hubErr models.ErrorResponse
	if err := json.Unmarshal(rawBody, &hubErr); err == nil {
		if target, ok := errorCodeMap[hubErr.Code]; ok {
			return fmt.Errorf("%w: %s", target, hubErr.Error)
		}
		if hubErr.Error != "" {
			body = hubErr.Error
		}
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, body)
	}
}
