package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/share-favorites/internal/adapter"
	"github.com/MKhiriev/share-favorites/internal/config"
	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/presenter"
	"github.com/MKhiriev/share-favorites/internal/service"
	"github.com/MKhiriev/share-favorites/internal/store"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

// App is one participant process.
type App struct {
	cfg *config.ClientConfig

	storages *store.ClientStorages
	tubes    transport.Tubes
	console  *presenter.Console
	activity *service.Activity

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local stores and joins the hub session. The console
// writes to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	bundles, err := storages.Registry.ListBundles(ctx)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("list installed bundles: %w", err)
	}
	log.Info().Int("bundles", len(bundles)).Msg("bundle registry loaded")
	if len(bundles) == 0 {
		log.Warn().Str("bundles_dir", cfg.Storage.BundlesDir).Msg("no installed bundles, received favorites cannot be applied")
	}

	tubes, err := adapter.NewHubTubes(ctx, cfg.Transport, "", log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("connect to tube hub: %w", err)
	}

	console := presenter.NewConsole(out, cfg.Activity.RosterWidth, models.AlertLater, log)

	activity := service.NewActivity(
		service.ActivityOptions{
			ServiceName:       cfg.Transport.ServiceName,
			Identity:          models.ParticipantInfo{Nick: cfg.Profile.Nick, Color: cfg.Profile.Color},
			AnimationInterval: cfg.Activity.AnimationInterval,
			WaitTimeout:       cfg.Activity.WaitTimeout,
		},
		storages,
		console,
		presenter.NewLoggingSession(log),
		nil,
		log,
	)

	return &App{
		cfg:      cfg,
		storages: storages,
		tubes:    tubes,
		console:  console,
		activity: activity,
		logger:   log,
	}, nil
}

// Run signals the configured role and runs the activity until ctx is done.
// The hub connection and the stores are released on return.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	session := &service.Session{ID: a.cfg.Transport.SessionID, Tubes: a.tubes}
	switch a.cfg.Activity.Mode {
	case config.ModeShare:
		a.activity.Shared(session)
	case config.ModeJoin:
		a.activity.Joined(session)
	default:
		return fmt.Errorf("%w: mode %q", config.ErrInvalidActivityConfigs, a.cfg.Activity.Mode)
	}

	a.logger.Info().
		Str("mode", a.cfg.Activity.Mode).
		Str("session", session.ID).
		Str("peer", a.tubes.LocalName()).
		Msg("share-favorites started")

	if err := a.activity.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) close() {
	if err := a.tubes.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to leave hub session")
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close storages")
	}
}
