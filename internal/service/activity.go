// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/store"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// User-facing notices.
const (
	alertTitle          = "Share Favorites"
	msgDownloading      = "Downloading favorites... please wait."
	msgNothingReceived  = "No favorites received"
	restartAlertTitle   = "Warning"
	restartAlertMessage = "Changes require restart"
)

// ActivityOptions tunes an [Activity].
type ActivityOptions struct {
	// ServiceName tags the tube carrying the favorites protocol.
	ServiceName string
	// Identity is sent to the sharer after a joiner synced.
	Identity models.ParticipantInfo
	// AnimationInterval paces the icon reveal.
	AnimationInterval time.Duration
	// WaitTimeout bounds how long a joiner waits for the snapshot. Zero
	// waits forever.
	WaitTimeout time.Duration
}

// Activity is one share-favorites session participant.
type Activity struct {
	opts ActivityOptions

	favorites store.FavoritesStore
	registry  store.BundleRegistry
	presenter Presenter
	sessions  SessionManager
	clock     clockwork.Clock
	logger    *logger.Logger

	state     sessionState
	queue     *eventQueue
	reveal    *iconRevealJob
	waitTimer clockwork.Timer
}

var _ transport.Listener = (*Activity)(nil)

// NewActivity wires an activity. A nil clock uses the real clock.
func NewActivity(
	opts ActivityOptions,
	storages *store.ClientStorages,
	presenter Presenter,
	sessions SessionManager,
	clock clockwork.Clock,
	log *logger.Logger,
) *Activity {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	a := &Activity{
		opts:      opts,
		favorites: storages.Favorites,
		registry:  storages.Registry,
		presenter: presenter,
		sessions:  sessions,
		clock:     clock,
		logger:    log,
		state:     newSessionState(),
		queue:     newEventQueue(),
	}
	a.reveal = newIconRevealJob(clock, opts.AnimationInterval, a.Post)

	return a
}

// Post queues ev for the event loop. It never blocks.
func (a *Activity) Post(ev Event) {
	a.queue.push(ev)
}

// Shared signals that the local participant originated session.
func (a *Activity) Shared(session *Session) {
	a.Post(Event{Kind: EventShared, Session: session})
}

// Joined signals that the local participant joined session.
func (a *Activity) Joined(session *Session) {
	a.Post(Event{Kind: EventJoined, Session: session})
}

// TubeAdded implements [transport.Listener].
func (a *Activity) TubeAdded(info models.TubeInfo) {
	a.Post(Event{Kind: EventTubeAdded, Tube: info})
}

// TextReceived implements [transport.Listener].
func (a *Activity) TextReceived(tubeID, sender, text string) {
	a.Post(Event{Kind: EventTextReceived, TubeID: tubeID, Sender: sender, Text: text})
}

// Run handles posted events one at a time until ctx is done. Handler errors
// are logged and do not stop the loop.
func (a *Activity) Run(ctx context.Context) error {
	a.logger.Info().Msg("activity event loop started")
	defer a.shutdown()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("activity event loop stopped")
			return ctx.Err()
		case <-a.queue.signal:
			for _, ev := range a.queue.popAll() {
				if err := a.Dispatch(ctx, ev); err != nil {
					a.logger.Err(err).Str("event", ev.Kind.String()).Msg("event handling failed")
				}
			}
		}
	}
}

// Dispatch handles a single event. It must only be called from one goroutine
// at a time, normally the one running Run.
func (a *Activity) Dispatch(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventShared:
		return a.onShared(ctx, ev.Session)
	case EventJoined:
		return a.onJoined(ctx, ev.Session)
	case EventTubeAdded:
		return a.onTubeAdded(ctx, ev.Tube)
	case EventTextReceived:
		return a.onTextReceived(ctx, ev.TubeID, ev.Sender, ev.Text)
	case EventHandshake:
		return a.onHandshake(ctx)
	case EventRevealIcon:
		a.presenter.RevealIcon(ev.IconPath)
		return nil
	case EventRevealDone:
		a.showRestartAlert()
		return nil
	case EventWaitTimeout:
		a.onWaitTimeout()
		return nil
	case EventRestartResponse:
		return a.onRestartResponse(ctx, ev.Response)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
	}
}

func (a *Activity) onWaitTimeout() {
	if !a.state.waiting {
		return
	}

	a.logger.Warn().Dur("timeout", a.opts.WaitTimeout).Msg("no favorites received in time")
	a.state.waiting = false
	a.presenter.RestoreCursor()
	a.presenter.NotifyAlert(alertTitle, msgNothingReceived, nil)
}

func (a *Activity) onRestartResponse(ctx context.Context, resp models.AlertResponse) error {
	a.logger.Debug().Str("response", resp.String()).Msg("restart notice answered")

	if resp != models.AlertRestart || a.sessions == nil {
		return nil
	}
	if err := a.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *Activity) showRestartAlert() {
	a.presenter.RestartAlert(restartAlertTitle, restartAlertMessage, func(resp models.AlertResponse) {
		a.Post(Event{Kind: EventRestartResponse, Response: resp})
	})
}

func (a *Activity) startWaitTimer() {
	if a.opts.WaitTimeout <= 0 {
		return
	}
	a.waitTimer = a.clock.AfterFunc(a.opts.WaitTimeout, func() {
		a.Post(Event{Kind: EventWaitTimeout})
	})
}

func (a *Activity) stopWaitTimer() {
	if a.waitTimer != nil {
		a.waitTimer.Stop()
		a.waitTimer = nil
	}
}

func (a *Activity) shutdown() {
	a.reveal.Stop()
	a.stopWaitTimer()
}
