package transport

import (
	"context"

	"github.com/MKhiriev/share-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Listener receives transport signals. Implementations must not block: they
// are called from the delivering goroutine.
type Listener interface {
	// TubeAdded reports a tube offered in the session, as seen by the local
	// participant.
	TubeAdded(info models.TubeInfo)
	// TextReceived reports one text broadcast on a tube the local participant
	// is a member of, including its own sends.
	TextReceived(tubeID, sender, text string)
}

// Tubes is one participant's view of a shared session.
type Tubes interface {
	// LocalName is the unique name of the local participant in the session.
	LocalName() string
	// Subscribe registers l for tube and text signals.
	Subscribe(l Listener)
	// OfferTube offers a new tube tagged with service. The offerer is its
	// initiator and a member from the start.
	OfferTube(ctx context.Context, service string) (models.TubeInfo, error)
	// ListTubes returns the tubes that already exist in the session.
	ListTubes(ctx context.Context) ([]models.TubeInfo, error)
	// AcceptTube makes the local participant a member of a pending tube.
	AcceptTube(ctx context.Context, tubeID string) (models.TubeInfo, error)
	// SendText broadcasts text to every member of the tube.
	SendText(ctx context.Context, tubeID, text string) error
	// Close leaves the session.
	Close() error
}
