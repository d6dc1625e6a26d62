package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

const (
	bundlesTable = "bundles"

	maxExecAttempts = 3
	execRetryDelay  = 50 * time.Millisecond
)

var bundleColumns = []string{"bundle_id", "version", "name", "icon_path", "favorite"}

// bundleRegistry stores installed bundles in SQLite and mirrors every favorite
// flag change into the favorites document.
type bundleRegistry struct {
	*DB
	favorites FavoritesStore
	builder   sq.StatementBuilderType
	logger    *logger.Logger
}

// NewBundleRegistry returns a [BundleRegistry] over db. Favorite changes are
// also written to favorites.
func NewBundleRegistry(db *DB, favorites FavoritesStore, log *logger.Logger) BundleRegistry {
	return &bundleRegistry{
		DB:        db,
		favorites: favorites,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:    log,
	}
}

// GetBundle returns the installed bundle version identified by key.
func (r *bundleRegistry) GetBundle(ctx context.Context, key models.BundleKey) (models.Bundle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(bundleColumns...).
		From(bundlesTable).
		Where(sq.Eq{"bundle_id": key.BundleID}).
		Where(sq.Eq{"version": key.Version}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Bundle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bundle models.Bundle
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&bundle.ID, &bundle.Version, &bundle.Name, &bundle.IconPath, &bundle.Favorite)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bundle{}, fmt.Errorf("%w: %s", ErrBundleNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "bundleRegistry.GetBundle").
			Str("bundle", key.String()).
			Msg("failed to scan bundle row")
		return models.Bundle{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bundle, nil
}

// SetBundleFavorite flips the favorite flag of one bundle version and keeps
// the favorites document in line with it.
//
// Unmarking removes the key from the document first, so a favorite whose
// bundle is no longer installed is still dropped; [ErrBundleNotFound] is
// returned afterwards. Marking requires the bundle to be installed. When the
// document cannot be written after the flag was set, the flag is reverted.
func (r *bundleRegistry) SetBundleFavorite(ctx context.Context, key models.BundleKey, favorite bool) error {
	if !favorite {
		if err := r.mirrorFavorite(ctx, key, false); err != nil {
			return err
		}
	}

	if err := r.updateFavorite(ctx, key, favorite); err != nil {
		return err
	}

	if favorite {
		if err := r.mirrorFavorite(ctx, key, true); err != nil {
			r.revertFavorite(ctx, key)
			return err
		}
	}

	return nil
}

func (r *bundleRegistry) updateFavorite(ctx context.Context, key models.BundleKey, favorite bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(bundlesTable).
		Set("favorite", favorite).
		Where(sq.Eq{"bundle_id": key.BundleID}).
		Where(sq.Eq{"version": key.Version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bundleRegistry.SetBundleFavorite").
			Str("bundle", key.String()).
			Msg("failed to update favorite flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrBundleNotFound, key)
	}

	return nil
}

// mirrorFavorite adds or removes key in the favorites document. An unchanged
// document is not rewritten.
func (r *bundleRegistry) mirrorFavorite(ctx context.Context, key models.BundleKey, favorite bool) error {
	snapshot, err := r.favorites.Read(ctx)
	if err != nil {
		return fmt.Errorf("read favorites document: %w", err)
	}

	raw := key.String()
	_, present := snapshot.Favorites[raw]
	switch {
	case favorite && !present:
		snapshot.Favorites[raw] = models.FavoriteMarker
	case !favorite && present:
		delete(snapshot.Favorites, raw)
	default:
		return nil
	}

	return r.favorites.Write(ctx, snapshot)
}

func (r *bundleRegistry) revertFavorite(ctx context.Context, key models.BundleKey) {
	if err := r.updateFavorite(ctx, key, false); err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "bundleRegistry.SetBundleFavorite").
			Str("bundle", key.String()).
			Msg("favorite flag set but missing from the favorites document")
	}
}

// AddBundle registers an installed bundle version. Registering the same
// version again refreshes its name and icon and keeps the favorite flag.
func (r *bundleRegistry) AddBundle(ctx context.Context, bundle models.Bundle) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(bundlesTable).
		Columns(bundleColumns...).
		Values(bundle.ID, bundle.Version, bundle.Name, bundle.IconPath, bundle.Favorite).
		Suffix("ON CONFLICT (bundle_id, version) DO UPDATE SET name = excluded.name, icon_path = excluded.icon_path").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "bundleRegistry.AddBundle").
			Str("bundle", bundle.Key().String()).
			Msg("failed to upsert bundle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListBundles returns every installed bundle ordered by id and version.
func (r *bundleRegistry) ListBundles(ctx context.Context) ([]models.Bundle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(bundleColumns...).
		From(bundlesTable).
		OrderBy("bundle_id", "version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "bundleRegistry.ListBundles").Msg("failed to query bundles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var bundles []models.Bundle
	for rows.Next() {
		var b models.Bundle
		if err = rows.Scan(&b.ID, &b.Version, &b.Name, &b.IconPath, &b.Favorite); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bundles = append(bundles, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bundles, nil
}

// exec runs a DML statement, retrying with a growing delay while the
// database reports it is busy.
func (r *bundleRegistry) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		result sql.Result
		err    error
	)

	for attempt := 1; attempt <= maxExecAttempts; attempt++ {
		result, err = r.DB.ExecContext(ctx, query, args...)
		if err == nil || r.errorClassificator == nil || r.errorClassificator.Classify(err) != Retryable {
			return result, err
		}
		if attempt == maxExecAttempts {
			break
		}

		delay := time.Duration(attempt) * execRetryDelay
		r.logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("database busy, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return result, err
}
