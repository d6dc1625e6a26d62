package http

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// Handler serves the tube hub. It owns one [transport.Hub] per shared session;
// a session exists while at least one peer stream is connected.
type Handler struct {
	mu       sync.Mutex
	sessions map[string]*transport.Hub
	streams  map[*peerStream]struct{}

	upgrader  websocket.Upgrader
	stream    StreamConfig
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(buildInfo models.AppBuildInfo, stream StreamConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sessions:  make(map[string]*transport.Hub),
		streams:   make(map[*peerStream]struct{}),
		upgrader:  websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		stream:    stream,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// join adds name to the session, creating the session on first join.
func (h *Handler) join(sessionID, name string) (*transport.Peer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	hub, ok := h.sessions[sessionID]
	if !ok {
		hub = transport.NewHub(h.logger.WithStr("session", sessionID))
	}

	peer, err := hub.Join(name)
	if err != nil {
		return nil, err
	}

	if !ok {
		h.sessions[sessionID] = hub
		h.logger.Info().Str("session", sessionID).Msg("session opened")
	}
	return peer, nil
}

// leave removes name from the session and drops the session once empty.
func (h *Handler) leave(sessionID, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	hub, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	if hub.Leave(name) {
		delete(h.sessions, sessionID)
		h.logger.Info().Str("session", sessionID).Msg("session closed")
	}
}

// peer resolves a joined peer of an open session.
func (h *Handler) peer(sessionID, name string) (*transport.Peer, error) {
	if name == "" {
		return nil, ErrEmptyPeer
	}

	h.mu.Lock()
	hub, ok := h.sessions[sessionID]
	h.mu.Unlock()
	if !ok {
		return nil, transport.ErrSessionNotFound
	}

	return hub.Peer(name)
}

func (h *Handler) sessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Handler) track(s *peerStream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.streams[s] = struct{}{}
}

func (h *Handler) untrack(s *peerStream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.streams, s)
}

// Close disconnects every peer stream. It is registered as a shutdown hook
// because hijacked connections are not closed by [http.Server.Shutdown].
func (h *Handler) Close() {
	h.mu.Lock()
	streams := make([]*peerStream, 0, len(h.streams))
	for s := range h.streams {
		streams = append(streams, s)
	}
	h.mu.Unlock()

	for _, s := range streams {
		s.close()
	}
	h.logger.Info().Int("streams", len(streams)).Msg("peer streams closed")
}
