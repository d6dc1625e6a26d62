package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/share-favorites/internal/config"
	"github.com/MKhiriev/share-favorites/internal/logger"
)

// ClientStorages groups the participant's local stores.
type ClientStorages struct {
	// Favorites is the whole-document favorites file in the profile directory.
	Favorites FavoritesStore

	// Registry is the SQLite bundle registry. Favorite flag changes made
	// through it are mirrored into Favorites.
	Registry BundleRegistry

	db *DB
}

// NewClientStorages opens the registry database, applies pending migrations,
// registers the bundles installed in the configured bundles directory and
// wires the favorites file of the configured profile.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	favorites := NewFavoritesFileStore(cfg.Profile.Dir, logger)
	registry := NewBundleRegistry(db, favorites, logger)

	if cfg.Storage.BundlesDir != "" {
		if _, err = SyncInstalledBundles(ctx, registry, cfg.Storage.BundlesDir, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("registering installed bundles failed: %w", err)
		}
	}

	return &ClientStorages{
		Favorites: favorites,
		Registry:  registry,
		db:        db,
	}, nil
}

// Close releases the registry database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
