package service

import (
	"sync"

	"github.com/MKhiriev/share-favorites/models"
)

// EventKind enumerates everything the activity reacts to.
type EventKind int

const (
	// EventShared fires once when the local participant originated the session.
	EventShared EventKind = iota
	// EventJoined fires once when the local participant joined someone else's session.
	EventJoined
	// EventTubeAdded reports a tube offered in the session or replayed from a listing.
	EventTubeAdded
	// EventTextReceived carries one text broadcast on a tube.
	EventTextReceived
	// EventHandshake is the joiner's trigger to clear its favorites and introduce itself.
	EventHandshake
	// EventRevealIcon asks to show the next icon of the applied favorites.
	EventRevealIcon
	// EventRevealDone fires when every collected icon was shown.
	EventRevealDone
	// EventWaitTimeout fires when a joiner waited too long for the snapshot.
	EventWaitTimeout
	// EventRestartResponse carries the answer to the restart notice.
	EventRestartResponse
)

var eventKindNames = map[EventKind]string{
	EventShared:          "shared",
	EventJoined:          "joined",
	EventTubeAdded:       "tube_added",
	EventTextReceived:    "text_received",
	EventHandshake:       "handshake",
	EventRevealIcon:      "reveal_icon",
	EventRevealDone:      "reveal_done",
	EventWaitTimeout:     "wait_timeout",
	EventRestartResponse: "restart_response",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one input of the activity. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Session is set for EventShared and EventJoined.
	Session *Session
	// Tube is set for EventTubeAdded.
	Tube models.TubeInfo
	// TubeID, Sender and Text are set for EventTextReceived.
	TubeID string
	Sender string
	Text   string
	// IconPath is set for EventRevealIcon.
	IconPath string
	// Response is set for EventRestartResponse.
	Response models.AlertResponse
}

// eventQueue is an unbounded FIFO. push never blocks, so transport callbacks
// and handlers running on the loop can post freely.
type eventQueue struct {
	mu     sync.Mutex
	events []Event
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{signal: make(chan struct{}, 1)}
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *eventQueue) popAll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}
