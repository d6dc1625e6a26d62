// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TubeState is the state of a tube as seen by one participant.
type TubeState int

const (
	// TubeStateLocalPending means the tube was offered by someone else and
	// must be accepted before it can carry text.
	TubeStateLocalPending TubeState = iota
	// TubeStateRemotePending means the local participant offered the tube and
	// nobody accepted it yet.
	TubeStateRemotePending
	// TubeStateOpen means the tube carries text for the local participant.
	TubeStateOpen
)

func (s TubeState) String() string {
	switch s {
	case TubeStateLocalPending:
		return "local_pending"
	case TubeStateRemotePending:
		return "remote_pending"
	case TubeStateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// TubeInfo describes one named message channel inside a shared session.
type TubeInfo struct {
	ID        string    `json:"id"`
	Initiator string    `json:"initiator"`
	Service   string    `json:"service"`
	State     TubeState `json:"state"`
}

// OfferTubeRequest is sent to the tube hub to offer a new tube.
type OfferTubeRequest struct {
	Peer    string `json:"peer"`
	Service string `json:"service"`
}

// Hub stream frame types.
const (
	FrameTubeAdded = "tube_added"
	FrameText      = "text"
	FrameError     = "error"
)

// HubFrame is one websocket frame exchanged with the tube hub.
type HubFrame struct {
	Type   string    `json:"type"`
	Tube   *TubeInfo `json:"tube,omitempty"`
	TubeID string    `json:"tube_id,omitempty"`
	Sender string    `json:"sender,omitempty"`
	Text   string    `json:"text,omitempty"`
}

// Hub error codes carried by [ErrorResponse].
const (
	ErrCodeBadRequest      = "bad_request"
	ErrCodeSessionNotFound = "session_not_found"
	ErrCodePeerNotFound    = "peer_not_found"
	ErrCodePeerExists      = "peer_exists"
	ErrCodeTubeNotFound    = "tube_not_found"
	ErrCodeNotTubeMember   = "not_tube_member"
	ErrCodeInternal        = "internal"
)

// ErrorResponse is the body of every failed hub REST call.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
