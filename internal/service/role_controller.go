package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/share-favorites/models"
)

// onShared makes the local participant the initiator and offers the
// favorites tube.
func (a *Activity) onShared(ctx context.Context, session *Session) error {
	if err := a.resolveRole(session, models.RoleInitiator); err != nil {
		return err
	}

	a.state.waiting = false
	a.logger.Debug().Str("session", session.ID).Msg("I am sharing...")

	session.Tubes.Subscribe(a)

	info, err := session.Tubes.OfferTube(ctx, a.opts.ServiceName)
	if err != nil {
		a.logger.Err(err).Str("service", a.opts.ServiceName).Msg("offering tube failed")
		return fmt.Errorf("offer tube: %w", err)
	}

	a.presenter.RemovePlaceholder()

	return a.onTubeAdded(ctx, info)
}

// onJoined makes the local participant a joiner, attaches to the tubes that
// already exist and starts waiting for the snapshot.
func (a *Activity) onJoined(ctx context.Context, session *Session) error {
	if err := a.resolveRole(session, models.RoleJoiner); err != nil {
		return err
	}

	a.logger.Debug().Str("session", session.ID).Msg("I joined a shared activity")

	session.Tubes.Subscribe(a)

	tubes, err := session.Tubes.ListTubes(ctx)
	if err != nil {
		a.logger.Err(err).Msg("listing tubes failed")
	}
	for _, info := range tubes {
		if attachErr := a.onTubeAdded(ctx, info); attachErr != nil {
			a.logger.Err(attachErr).Str("tube", info.ID).Msg("attaching listed tube failed")
		}
	}

	a.state.waiting = true
	a.presenter.ShowWaiting()
	a.presenter.RemovePlaceholder()
	a.presenter.NotifyAlert(alertTitle, msgDownloading, func() {
		a.Post(Event{Kind: EventHandshake})
	})
	a.startWaitTimer()

	return nil
}

func (a *Activity) resolveRole(session *Session, role models.SessionRole) error {
	if session == nil || session.Tubes == nil {
		a.logger.Error().Str("role", role.String()).Msg("failed to share or join activity: no shared session")
		return ErrNoSharedSession
	}
	if a.state.role != models.RoleUnresolved {
		a.logger.Error().
			Str("role", a.state.role.String()).
			Str("requested", role.String()).
			Msg("session role already resolved")
		return fmt.Errorf("%w: %s", ErrRoleAlreadyResolved, a.state.role)
	}

	a.state.role = role
	a.state.session = session
	return nil
}

// onTubeAdded attaches to a tube of the favorites service. Each tube id is
// attached at most once, whether it came from a listing or a new-tube signal.
func (a *Activity) onTubeAdded(ctx context.Context, info models.TubeInfo) error {
	if a.state.session == nil {
		a.logger.Debug().Str("tube", info.ID).Msg("tube signal before the session role was resolved, ignoring")
		return nil
	}
	if info.Service != a.opts.ServiceName {
		a.logger.Debug().Str("tube", info.ID).Str("service", info.Service).Msg("tube of another service, ignoring")
		return nil
	}
	if _, seen := a.state.tubes[info.ID]; seen {
		return nil
	}

	a.logger.Debug().
		Str("tube", info.ID).
		Str("initiator", info.Initiator).
		Str("state", info.State.String()).
		Msg("new tube")

	tubes := a.state.session.Tubes
	if info.State == models.TubeStateLocalPending {
		accepted, err := tubes.AcceptTube(ctx, info.ID)
		if err != nil {
			return fmt.Errorf("accept tube %s: %w", info.ID, err)
		}
		info = accepted
	}

	a.state.tubes[info.ID] = info
	if a.state.chat == nil {
		a.state.chat = NewChatTube(tubes, info, a.logger)
	}

	return a.onChannelAttached(ctx)
}

// onChannelAttached pushes the snapshot when sharing. A joiner becomes able
// to receive, and sends the identity ack if the handshake ran before any tube
// was attached.
func (a *Activity) onChannelAttached(ctx context.Context) error {
	switch a.state.role {
	case models.RoleInitiator:
		return a.pushFavorites(ctx)
	case models.RoleJoiner:
		if a.state.handshakeAcked {
			return a.pushIdentityOnce(ctx)
		}
	}
	return nil
}
