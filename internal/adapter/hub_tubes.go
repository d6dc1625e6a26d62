// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/share-favorites/internal/config"
	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/internal/utils"
)

const closeGracePeriod = time.Second

// hubTubes is one participant's connection to a remote tube hub.
type hubTubes struct {
	client  *utils.HTTPClient
	conn    *websocket.Conn
	cfg     config.Transport
	session string
	name    string

	// gorilla allows one concurrent writer
	writeMu sync.Mutex

	mu        sync.RWMutex
	listeners []transport.Listener

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

var _ transport.Tubes = (*hubTubes)(nil)

// NewHubTubes joins the session cfg.SessionID on the hub at cfg.HubAddress.
// An empty peerName is replaced by a generated unique name. The peer is a
// member of the session once NewHubTubes returns.
func NewHubTubes(ctx context.Context, cfg config.Transport, peerName string, log *logger.Logger) (transport.Tubes, error) {
	if peerName == "" {
		peerName = utils.NewUUIDGenerator().Generate()
	}

	streamURL := fmt.Sprintf("%s/api/sessions/%s/ws?peer=%s",
		cfg.StreamURL(), url.PathEscape(cfg.SessionID), url.QueryEscape(peerName))

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = cfg.Timeout()

	conn, resp, err := dialer.DialContext(ctx, streamURL, nil)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			if mapped := mapHubError(resp.StatusCode, body); mapped != nil {
				return nil, fmt.Errorf("join session %q: %w", cfg.SessionID, mapped)
			}
		}
		return nil, fmt.Errorf("join session %q: %w", cfg.SessionID, err)
	}

	h := &hubTubes{
		client:  utils.NewHTTPClient(cfg.HubURL(), cfg.Timeout()),
		conn:    conn,
		cfg:     cfg,
		session: cfg.SessionID,
		name:    peerName,
		done:    make(chan struct{}),
		logger:  log.WithStr("peer", peerName),
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.readLoop()
	}()

	h.logger.Info().Str("session", h.session).Msg("joined tube hub session")
	return h, nil
}

// LocalName implements [transport.Tubes].
func (h *hubTubes) LocalName() string { return h.name }

// Subscribe implements [transport.Tubes]. Frames that arrive before the first
// subscription are dropped; ListTubes replays the tubes they announced.
func (h *hubTubes) Subscribe(l transport.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Close implements [transport.Tubes]. It leaves the session and waits for the
// read loop to end.
func (h *hubTubes) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.done)

		_ = h.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod))

		err = h.conn.Close()
	})
	h.wg.Wait()

	return err
}

func (h *hubTubes) snapshotListeners() []transport.Listener {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]transport.Listener(nil), h.listeners...)
}
