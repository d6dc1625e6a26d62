package service

import "errors"

var (
	// ErrNoSharedSession is returned when a shared or joined signal arrives
	// without a backing session.
	ErrNoSharedSession = errors.New("no shared session to act on")

	// ErrRoleAlreadyResolved is returned on a second role transition.
	ErrRoleAlreadyResolved = errors.New("session role already resolved")

	// ErrUnknownCommand is returned for a message with an unhandled tag.
	ErrUnknownCommand = errors.New("unhandled protocol command")

	// ErrNotInitiator is returned when a favorites push does not come from
	// the tube initiator.
	ErrNotInitiator = errors.New("favorites pushed by a participant that is not the tube initiator")

	// ErrUnknownEvent is returned by Dispatch for an event kind it does not know.
	ErrUnknownEvent = errors.New("unknown event")
)
