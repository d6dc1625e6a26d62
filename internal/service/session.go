package service

import (
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// Session is the shared-session context delivered with the shared and joined
// signals.
type Session struct {
	ID    string
	Tubes transport.Tubes
}

// sessionState is everything the activity knows about the session. It is
// only read and written by Dispatch.
type sessionState struct {
	role    models.SessionRole
	session *Session
	chat    *ChatTube

	// tubes holds every attached tube of the favorites service by id.
	tubes map[string]models.TubeInfo

	waiting      bool
	unsetDone    bool
	identitySent bool
	// handshakeAcked is set once the downloading notice was acknowledged.
	// A tube attached afterwards still carries the identity ack.
	handshakeAcked bool
	applied        int

	roster []models.ParticipantInfo
}

func newSessionState() sessionState {
	return sessionState{tubes: make(map[string]models.TubeInfo)}
}
