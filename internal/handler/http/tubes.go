package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/utils"
	"github.com/MKhiriev/share-favorites/models"
)

const (
	sessionParam = "session"
	tubeParam    = "tube"
	peerQuery    = "peer"
)

// offerTube handles POST /api/sessions/{session}/tubes.
func (h *Handler) offerTube(w http.ResponseWriter, r *http.Request) {
	var req models.OfferTubeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err))
		return
	}

	peer, err := h.peer(chi.URLParam(r, sessionParam), req.Peer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := peer.OfferTube(r.Context(), req.Service)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("tube", info.ID).Str("service", info.Service).Msg("tube offered")
	utils.WriteJSON(w, info, http.StatusCreated)
}

// listTubes handles GET /api/sessions/{session}/tubes?peer=.
func (h *Handler) listTubes(w http.ResponseWriter, r *http.Request) {
	peer, err := h.peer(chi.URLParam(r, sessionParam), r.URL.Query().Get(peerQuery))
	if err != nil {
		writeError(w, r, err)
		return
	}

	tubes, err := peer.ListTubes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tubes, http.StatusOK)
}

// acceptTube handles POST /api/sessions/{session}/tubes/{tube}/accept?peer=.
func (h *Handler) acceptTube(w http.ResponseWriter, r *http.Request) {
	peer, err := h.peer(chi.URLParam(r, sessionParam), r.URL.Query().Get(peerQuery))
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := peer.AcceptTube(r.Context(), chi.URLParam(r, tubeParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
