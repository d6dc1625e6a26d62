package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/share-favorites/internal/protocol"
	"github.com/MKhiriev/share-favorites/models"
)

// send broadcasts msg on the favorites tube. Without a tube it does nothing.
func (a *Activity) send(ctx context.Context, msg protocol.Message) (bool, error) {
	if a.state.chat == nil {
		a.logger.Debug().Str("command", msg.Command().String()).Msg("no tube yet, message dropped")
		return false, nil
	}
	if err := a.state.chat.Send(ctx, msg); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Activity) onTextReceived(ctx context.Context, tubeID, sender, text string) error {
	info, attached := a.state.tubes[tubeID]
	if !attached {
		a.logger.Debug().Str("tube", tubeID).Msg("text on a tube that is not attached, ignoring")
		return nil
	}
	if a.state.chat != nil && a.state.chat.IsSelf(sender) {
		return nil
	}

	msg, err := protocol.Decode(text)
	if err != nil {
		a.logger.Err(err).Str("sender", sender).Msg("malformed message")
		return fmt.Errorf("decode message from %s: %w", sender, err)
	}

	a.logger.Debug().Str("sender", sender).Msgf("<<< %s", msg.Command())

	switch m := msg.(type) {
	case protocol.PushFavorites:
		return a.onPushFavorites(ctx, info, sender, m.Snapshot)
	case protocol.PushIdentity:
		return a.onPushIdentity(ctx, sender, m.Participant)
	case protocol.Unknown:
		a.logger.Error().Str("command", m.Tag.String()).Str("sender", sender).Msg("unhandled command")
		return fmt.Errorf("%w: %q", ErrUnknownCommand, m.Tag.String())
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, msg)
	}
}

// onPushFavorites replaces the joiner's favorites with the sharer's snapshot.
func (a *Activity) onPushFavorites(ctx context.Context, tube models.TubeInfo, sender string, snapshot models.FavoritesSnapshot) error {
	if a.state.role != models.RoleJoiner {
		a.logger.Debug().Str("sender", sender).Msg("favorites push while not joining, ignoring")
		return nil
	}
	if sender != tube.Initiator {
		a.logger.Warn().Str("sender", sender).Str("initiator", tube.Initiator).Msg("favorites push from a non-initiator")
		return fmt.Errorf("%w: %s", ErrNotInitiator, sender)
	}

	a.stopWaitTimer()

	if err := a.unsetOnce(ctx); err != nil {
		return err
	}
	a.applySnapshot(ctx, snapshot)
	a.state.waiting = false

	return a.pushIdentityOnce(ctx)
}

// onPushIdentity reacts to a joiner introducing itself. The sharer resends
// its snapshot for the late joiner and adds it to the roster.
func (a *Activity) onPushIdentity(ctx context.Context, sender string, participant models.ParticipantInfo) error {
	if a.state.role != models.RoleInitiator {
		a.logger.Debug().Str("sender", sender).Str("nick", participant.Nick).Msg("identity from another joiner, ignoring")
		return nil
	}

	if err := a.pushFavorites(ctx); err != nil {
		return err
	}

	a.state.roster = append(a.state.roster, participant)
	a.presenter.AddBuddy(participant)
	a.logger.Info().Str("nick", participant.Nick).Int("roster", len(a.state.roster)).Msg("participant synced")

	return nil
}

// onHandshake clears the joiner's favorites and introduces it to the sharer.
func (a *Activity) onHandshake(ctx context.Context) error {
	if a.state.role != models.RoleJoiner {
		return nil
	}
	a.state.handshakeAcked = true

	if err := a.unsetOnce(ctx); err != nil {
		return err
	}
	return a.pushIdentityOnce(ctx)
}

func (a *Activity) pushFavorites(ctx context.Context) error {
	snapshot, err := a.favorites.Read(ctx)
	if err != nil {
		a.logger.Err(err).Msg("reading local favorites failed")
		return fmt.Errorf("read favorites: %w", err)
	}

	_, err = a.send(ctx, protocol.PushFavorites{Snapshot: snapshot})
	return err
}

// pushIdentityOnce sends the identity ack the first time a tube is available.
func (a *Activity) pushIdentityOnce(ctx context.Context) error {
	if a.state.identitySent {
		return nil
	}

	sent, err := a.send(ctx, protocol.PushIdentity{Participant: a.opts.Identity})
	if err != nil {
		return err
	}
	a.state.identitySent = sent
	return nil
}

func (a *Activity) unsetOnce(ctx context.Context) error {
	if a.state.unsetDone {
		return nil
	}
	if err := a.unsetLocalFavorites(ctx); err != nil {
		return err
	}
	a.state.unsetDone = true
	return nil
}
