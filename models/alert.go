package models

// AlertResponse is the button chosen on the restart notice.
type AlertResponse int

const (
	// AlertCancel discards the pending restart.
	AlertCancel AlertResponse = iota
	// AlertLater keeps the changes and restarts some other time.
	AlertLater
	// AlertRestart logs out of the session so the shell picks up the changes.
	AlertRestart
)

func (r AlertResponse) String() string {
	switch r {
	case AlertCancel:
		return "cancel"
	case AlertLater:
		return "later"
	case AlertRestart:
		return "restart"
	default:
		return "unknown"
	}
}
