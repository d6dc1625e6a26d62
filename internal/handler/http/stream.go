// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// StreamConfig tunes the websocket stream of every connected peer.
type StreamConfig struct {
	// WriteTimeout bounds one frame write.
	WriteTimeout time.Duration
	// PongTimeout is how long the peer may stay silent before it is dropped.
	PongTimeout time.Duration
	// PingInterval must be shorter than PongTimeout.
	PingInterval time.Duration
	// MaxMessageSize bounds one inbound frame; a favorites snapshot travels
	// in a single frame.
	MaxMessageSize int64
	// SendBuffer is the number of outbound frames queued per peer.
	SendBuffer int
}

// DefaultStreamConfig returns the stream settings used by the hub binary.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		WriteTimeout:   10 * time.Second,
		PongTimeout:    60 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 1 << 20,
		SendBuffer:     256,
	}
}

// openStream handles GET /api/sessions/{session}/ws?peer=. The peer joins the
// session before the upgrade, so REST calls are valid as soon as the dial
// returns. The peer leaves the session when the stream ends.
func (h *Handler) openStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, sessionParam)
	name := r.URL.Query().Get(peerQuery)
	if name == "" {
		writeError(w, r, ErrEmptyPeer)
		return
	}

	peer, err := h.join(sessionID, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer h.leave(sessionID, name)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		logger.FromRequest(r).Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	s := newPeerStream(conn, peer, h.stream, logger.FromRequest(r).WithStr("peer", name))
	h.track(s)
	defer h.untrack(s)

	peer.Subscribe(s)
	s.logger.Info().Str("session", sessionID).Msg("peer stream established")

	s.run(r.Context())

	s.logger.Info().Str("session", sessionID).Msg("peer stream closed")
}

// peerStream pumps hub signals of one peer to its websocket and inbound text
// frames to the hub. It implements [transport.Listener].
type peerStream struct {
	conn *websocket.Conn
	peer *transport.Peer
	cfg  StreamConfig

	send      chan models.HubFrame
	done      chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

var _ transport.Listener = (*peerStream)(nil)

func newPeerStream(conn *websocket.Conn, peer *transport.Peer, cfg StreamConfig, log *logger.Logger) *peerStream {
	return &peerStream{
		conn:   conn,
		peer:   peer,
		cfg:    cfg,
		send:   make(chan models.HubFrame, cfg.SendBuffer),
		done:   make(chan struct{}),
		logger: log,
	}
}

// TubeAdded queues a tube_added frame.
func (s *peerStream) TubeAdded(info models.TubeInfo) {
	s.enqueue(models.HubFrame{Type: models.FrameTubeAdded, Tube: &info})
}

// TextReceived queues a text frame.
func (s *peerStream) TextReceived(tubeID, sender, text string) {
	s.enqueue(models.HubFrame{Type: models.FrameText, TubeID: tubeID, Sender: sender, Text: text})
}

// run blocks until the stream is closed by either side.
func (s *peerStream) run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writePump()
	}()

	s.readPump(ctx)
	s.close()
	wg.Wait()
}

func (s *peerStream) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// enqueue never blocks: a peer whose buffer is full is disconnected.
func (s *peerStream) enqueue(frame models.HubFrame) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.send <- frame:
	case <-s.done:
	default:
		s.logger.Warn().Str("frame", frame.Type).Msg("stream send buffer full, closing connection")
		s.close()
	}
}

func (s *peerStream) writePump() {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case <-s.done:
			return

		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteJSON(frame); err != nil {
				s.logger.Error().Err(err).Str("frame", frame.Type).Msg("failed to write frame to websocket")
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Error().Err(err).Msg("failed to send ping")
				return
			}
		}
	}
}

func (s *peerStream) readPump(ctx context.Context) {
	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error().Err(err).Msg("unexpected websocket close error")
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))

		var frame models.HubFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			s.logger.Warn().Err(err).Msg("malformed inbound frame")
			continue
		}
		s.handleFrame(ctx, frame)
	}
}

func (s *peerStream) handleFrame(ctx context.Context, frame models.HubFrame) {
	if frame.Type != models.FrameText {
		s.logger.Debug().Str("frame", frame.Type).Msg("ignoring inbound frame")
		return
	}

	if err := s.peer.SendText(ctx, frame.TubeID, frame.Text); err != nil {
		s.logger.Warn().Err(err).Str("tube", frame.TubeID).Msg("failed to broadcast text")
		s.enqueue(models.HubFrame{Type: models.FrameError, TubeID: frame.TubeID, Text: err.Error()})
	}
}
