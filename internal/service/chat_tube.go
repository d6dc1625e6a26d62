package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/protocol"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// ChatTube is the protocol endpoint bound to the one tube carrying favorites.
type ChatTube struct {
	tubes  transport.Tubes
	info   models.TubeInfo
	logger *logger.Logger
}

// NewChatTube binds a protocol endpoint to an attached tube.
func NewChatTube(tubes transport.Tubes, info models.TubeInfo, log *logger.Logger) *ChatTube {
	return &ChatTube{
		tubes:  tubes,
		info:   info,
		logger: log.WithStr("tube", info.ID),
	}
}

// ID returns the tube id.
func (c *ChatTube) ID() string { return c.info.ID }

// Initiator returns the unique name of the participant that offered the tube.
func (c *ChatTube) Initiator() string { return c.info.Initiator }

// IsSelf reports whether sender is the local participant.
func (c *ChatTube) IsSelf(sender string) bool {
	return sender == c.tubes.LocalName()
}

// Send encodes msg and broadcasts it on the tube.
func (c *ChatTube) Send(ctx context.Context, msg protocol.Message) error {
	text, err := protocol.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Command(), err)
	}

	c.logger.Debug().Msgf(">>> %s", msg.Command())

	if err = c.tubes.SendText(ctx, c.info.ID, text); err != nil {
		return fmt.Errorf("send %s message: %w", msg.Command(), err)
	}
	return nil
}
