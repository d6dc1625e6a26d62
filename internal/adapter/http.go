package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/share-favorites/models"
)

const (
	tubesPath  = "/api/sessions/{session}/tubes"
	acceptPath = "/api/sessions/{session}/tubes/{tube}/accept"
)

// OfferTube implements [transport.Tubes] with POST /api/sessions/{session}/tubes.
func (h *hubTubes) OfferTube(ctx context.Context, service string) (models.TubeInfo, error) {
	var info models.TubeInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("session", h.session).
		SetHeader("Content-Type", "application/json").
		SetBody(models.OfferTubeRequest{Peer: h.name, Service: service}).
		SetResult(&info).
		Post(tubesPath)
	if err != nil {
		return models.TubeInfo{}, fmt.Errorf("offer tube request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TubeInfo{}, err
	}

	return info, nil
}

// ListTubes implements [transport.Tubes] with GET /api/sessions/{session}/tubes.
func (h *hubTubes) ListTubes(ctx context.Context) ([]models.TubeInfo, error) {
	var tubes []models.TubeInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("session", h.session).
		SetQueryParam("peer", h.name).
		SetResult(&tubes).
		Get(tubesPath)
	if err != nil {
		return nil, fmt.Errorf("list tubes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tubes, nil
}

// AcceptTube implements [transport.Tubes] with
// POST /api/sessions/{session}/tubes/{tube}/accept.
func (h *hubTubes) AcceptTube(ctx context.Context, tubeID string) (models.TubeInfo, error) {
	var info models.TubeInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"session": h.session, "tube": tubeID}).
		SetQueryParam("peer", h.name).
		SetResult(&info).
		Post(acceptPath)
	if err != nil {
		return models.TubeInfo{}, fmt.Errorf("accept tube request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TubeInfo{}, err
	}

	return info, nil
}
