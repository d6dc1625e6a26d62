// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionRole is the part the local participant plays in a shared session.
// It is resolved exactly once per activity instance.
type SessionRole int

const (
	// RoleUnresolved is the state before the session was shared or joined.
	RoleUnresolved SessionRole = iota
	// RoleInitiator holds the authoritative favorites snapshot.
	RoleInitiator
	// RoleJoiner waits for the initiator's snapshot.
	RoleJoiner
)

func (r SessionRole) String() string {
	switch r {
	case RoleUnresolved:
		return "unresolved"
	case RoleInitiator:
		return "initiator"
	case RoleJoiner:
		return "joiner"
	default:
		return "unknown"
	}
}
