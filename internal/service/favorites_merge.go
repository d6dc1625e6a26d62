// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/share-favorites/internal/store"
	"github.com/MKhiriev/share-favorites/models"
)

// applySnapshot marks every bundle of snapshot as favorite. Bundles that are
// not installed locally are skipped. Icons of the applied bundles are
// revealed one by one; without any icon the restart notice is shown instead.
func (a *Activity) applySnapshot(ctx context.Context, snapshot models.FavoritesSnapshot) {
	keys, malformed := snapshot.Keys()
	for _, raw := range malformed {
		a.logger.Debug().Str("key", raw).Msg("malformed bundle key, skipping")
	}

	var iconPaths []string
	for _, key := range keys {
		a.logger.Debug().Str("bundle", key.BundleID).Msg("adding")

		if err := a.registry.SetBundleFavorite(ctx, key, true); err != nil {
			a.logger.Debug().Err(err).
				Str("bundle", key.BundleID).
				Str("version", key.Version).
				Msg("bundle not available")
			continue
		}

		bundle, err := a.registry.GetBundle(ctx, key)
		if err != nil {
			a.logger.Debug().Err(err).Str("bundle", key.String()).Msg("bundle lookup failed")
			continue
		}
		if bundle.IconPath == "" {
			continue
		}
		if _, err = os.Stat(bundle.IconPath); err == nil {
			iconPaths = append(iconPaths, bundle.IconPath)
		}
	}

	a.state.applied++
	a.logger.Info().
		Int("received", snapshot.Len()).
		Int("applied", len(keys)).
		Int("icons", len(iconPaths)).
		Msg("favorites applied")

	if len(iconPaths) == 0 {
		a.showRestartAlert()
	} else {
		a.reveal.Start(ctx, iconPaths)
	}

	a.presenter.RestoreCursor()
}

// unsetLocalFavorites clears the favorite flag of every bundle in the locally
// stored document, so that applying the sharer's snapshot afterwards replaces
// the local favorites instead of merging into them.
func (a *Activity) unsetLocalFavorites(ctx context.Context) error {
	local, err := a.favorites.Read(ctx)
	if err != nil {
		a.logger.Err(err).Msg("reading local favorites failed")
		return fmt.Errorf("read local favorites: %w", err)
	}

	keys, malformed := local.Keys()
	for _, raw := range malformed {
		a.logger.Debug().Str("key", raw).Msg("malformed bundle key, skipping")
	}

	for _, key := range keys {
		a.logger.Debug().Str("bundle", key.BundleID).Msg("removing")

		err = a.registry.SetBundleFavorite(ctx, key, false)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrBundleNotFound):
			a.logger.Debug().Str("bundle", key.String()).Msg("bundle not installed, dropped from favorites")
		default:
			a.logger.Warn().Err(err).Str("bundle", key.String()).Msg("unsetting favorite failed")
		}
	}

	return nil
}
