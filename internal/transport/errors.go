package transport

import "errors"

var (
	// ErrTubeNotFound is returned for an unknown tube id.
	ErrTubeNotFound = errors.New("tube not found")

	// ErrNotTubeMember is returned when sending on a tube that was not
	// accepted by the sender.
	ErrNotTubeMember = errors.New("peer is not a member of the tube")

	// ErrPeerNotFound is returned for a peer that is not in the session.
	ErrPeerNotFound = errors.New("peer not found")

	// ErrPeerExists is returned when joining with a name already in use.
	ErrPeerExists = errors.New("peer name already in use")

	// ErrSessionNotFound is returned by remote hubs for a session nobody
	// has joined yet.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyService is returned when offering a tube without a service tag.
	ErrEmptyService = errors.New("tube service must not be empty")
)
