// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

// Hub is an in-process shared session. Peers join by name, offer and accept
// tubes and broadcast text to tube members. Signals are delivered
// synchronously to peer listeners, outside the hub lock.
type Hub struct {
	mu    sync.Mutex
	peers map[string]*Peer
	tubes map[string]*tube
	seq   int

	logger *logger.Logger
}

type tube struct {
	info    models.TubeInfo
	seq     int
	members map[string]struct{}
}

// NewHub creates an empty session.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		peers:  make(map[string]*Peer),
		tubes:  make(map[string]*tube),
		logger: log,
	}
}

// Join adds a peer to the session. An empty name gets a generated one.
func (h *Hub) Join(name string) (*Peer, error) {
	if name == "" {
		name = uuid.NewString()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.peers[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrPeerExists, name)
	}

	p := &Peer{name: name, hub: h}
	h.peers[name] = p
	h.logger.Debug().Str("peer", name).Int("peers", len(h.peers)).Msg("peer joined")

	return p, nil
}

// Leave removes a peer and its tube memberships. It reports whether the
// session is now empty.
func (h *Hub) Leave(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.peers, name)
	for _, t := range h.tubes {
		delete(t.members, name)
	}
	h.logger.Debug().Str("peer", name).Int("peers", len(h.peers)).Msg("peer left")

	return len(h.peers) == 0
}

// Peer returns a joined peer by name.
func (h *Hub) Peer(name string) (*Peer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.peers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPeerNotFound, name)
	}
	return p, nil
}

func (h *Hub) offer(from, service string) (models.TubeInfo, error) {
	if service == "" {
		return models.TubeInfo{}, ErrEmptyService
	}

	h.mu.Lock()
	if _, ok := h.peers[from]; !ok {
		h.mu.Unlock()
		return models.TubeInfo{}, fmt.Errorf("%w: %s", ErrPeerNotFound, from)
	}

	h.seq++
	t := &tube{
		info:    models.TubeInfo{ID: uuid.NewString(), Initiator: from, Service: service},
		seq:     h.seq,
		members: map[string]struct{}{from: {}},
	}
	h.tubes[t.info.ID] = t

	targets := h.snapshotPeers()
	h.mu.Unlock()

	h.logger.Debug().Str("tube", t.info.ID).Str("initiator", from).Str("service", service).Msg("tube offered")

	for _, p := range targets {
		p.notifyTubeAdded(t.viewFor(p.name))
	}

	return t.viewFor(from), nil
}

func (h *Hub) list(peer string) ([]models.TubeInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.peers[peer]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrPeerNotFound, peer)
	}

	ordered := make([]*tube, 0, len(h.tubes))
	for _, t := range h.tubes {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seq < ordered[j].seq })

	infos := make([]models.TubeInfo, 0, len(ordered))
	for _, t := range ordered {
		infos = append(infos, t.viewFor(peer))
	}
	return infos, nil
}

func (h *Hub) accept(peer, tubeID string) (models.TubeInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.peers[peer]; !ok {
		return models.TubeInfo{}, fmt.Errorf("%w: %s", ErrPeerNotFound, peer)
	}
	t, ok := h.tubes[tubeID]
	if !ok {
		return models.TubeInfo{}, fmt.Errorf("%w: %s", ErrTubeNotFound, tubeID)
	}

	t.members[peer] = struct{}{}
	h.logger.Debug().Str("tube", tubeID).Str("peer", peer).Int("members", len(t.members)).Msg("tube accepted")

	return t.viewFor(peer), nil
}

func (h *Hub) send(from, tubeID, text string) error {
	h.mu.Lock()
	t, ok := h.tubes[tubeID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTubeNotFound, tubeID)
	}
	if _, member := t.members[from]; !member {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotTubeMember, from)
	}

	targets := make([]*Peer, 0, len(t.members))
	for name := range t.members {
		if p, ok := h.peers[name]; ok {
			targets = append(targets, p)
		}
	}
	h.mu.Unlock()

	for _, p := range targets {
		p.notifyText(tubeID, from, text)
	}
	return nil
}

func (h *Hub) snapshotPeers() []*Peer {
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	return peers
}

func (t *tube) viewFor(peer string) models.TubeInfo {
	info := t.info
	switch {
	case peer == t.info.Initiator && len(t.members) == 1:
		info.State = models.TubeStateRemotePending
	case hasMember(t.members, peer):
		info.State = models.TubeStateOpen
	default:
		info.State = models.TubeStateLocalPending
	}
	return info
}

func hasMember(members map[string]struct{}, name string) bool {
	_, ok := members[name]
	return ok
}

// Peer is one participant of a [Hub]. It implements [Tubes].
type Peer struct {
	name string
	hub  *Hub

	mu        sync.RWMutex
	listeners []Listener
}

var _ Tubes = (*Peer)(nil)

// LocalName returns the peer's unique name in the session.
func (p *Peer) LocalName() string { return p.name }

// Subscribe registers l for tube and text signals.
func (p *Peer) Subscribe(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// OfferTube offers a tube tagged with service.
func (p *Peer) OfferTube(_ context.Context, service string) (models.TubeInfo, error) {
	return p.hub.offer(p.name, service)
}

// ListTubes returns the tubes of the session in offer order.
func (p *Peer) ListTubes(_ context.Context) ([]models.TubeInfo, error) {
	return p.hub.list(p.name)
}

// AcceptTube joins a tube.
func (p *Peer) AcceptTube(_ context.Context, tubeID string) (models.TubeInfo, error) {
	return p.hub.accept(p.name, tubeID)
}

// SendText broadcasts text on a tube the peer is a member of.
func (p *Peer) SendText(_ context.Context, tubeID, text string) error {
	return p.hub.send(p.name, tubeID, text)
}

// Close leaves the session.
func (p *Peer) Close() error {
	p.hub.Leave(p.name)
	return nil
}

func (p *Peer) notifyTubeAdded(info models.TubeInfo) {
	for _, l := range p.snapshotListeners() {
		l.TubeAdded(info)
	}
}

func (p *Peer) notifyText(tubeID, sender, text string) {
	for _, l := range p.snapshotListeners() {
		l.TextReceived(tubeID, sender, text)
	}
}

func (p *Peer) snapshotListeners() []Listener {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Listener(nil), p.listeners...)
}
