package service

import (
	"context"

	"github.com/MKhiriev/share-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Presenter renders the activity for the local user. Callbacks handed to it
// may be invoked from any goroutine.
type Presenter interface {
	// RemovePlaceholder removes the initial "waiting for a session" visual.
	RemovePlaceholder()
	// ShowWaiting switches to the busy cursor while a joiner waits.
	ShowWaiting()
	// RestoreCursor switches back to the normal cursor.
	RestoreCursor()
	// NotifyAlert shows a notice; onAck, when not nil, runs once the notice
	// was acknowledged.
	NotifyAlert(title, msg string, onAck func())
	// RestartAlert asks whether to restart now, later or cancel.
	RestartAlert(title, msg string, onResponse func(models.AlertResponse))
	// RevealIcon shows one bundle icon of the applied favorites.
	RevealIcon(path string)
	// AddBuddy adds a synced participant to the sharer's roster.
	AddBuddy(participant models.ParticipantInfo)
}

// SessionManager ends the desktop session so changed favorites take effect.
type SessionManager interface {
	Logout(ctx context.Context) error
}
