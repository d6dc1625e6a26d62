// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

// favoritesFileStore keeps the favorites document as a single JSON file in
// the profile directory. The document is always read and written whole.
type favoritesFileStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFavoritesFileStore returns a [FavoritesStore] backed by the
// [models.FavoritesFileName] file inside profileDir.
func NewFavoritesFileStore(profileDir string, log *logger.Logger) FavoritesStore {
	return &favoritesFileStore{
		path:   filepath.Join(profileDir, models.FavoritesFileName),
		logger: log,
	}
}

// Read returns the stored snapshot. A missing file is an empty snapshot.
func (f *favoritesFileStore) Read(ctx context.Context) (models.FavoritesSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read(ctx)
}

// Write replaces the stored document with snapshot.
func (f *favoritesFileStore) Write(ctx context.Context, snapshot models.FavoritesSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(ctx, snapshot)
}

func (f *favoritesFileStore) read(ctx context.Context) (models.FavoritesSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug().Str("func", "favoritesFileStore.Read").Str("path", f.path).Msg("no favorites document yet")
		return models.NewFavoritesSnapshot(), nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "favoritesFileStore.Read").Str("path", f.path).Msg("error reading favorites document")
		return models.FavoritesSnapshot{}, fmt.Errorf("read favorites document: %w", err)
	}

	var snapshot models.FavoritesSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		f.logger.Err(err).Str("func", "favoritesFileStore.Read").Str("path", f.path).Msg("error decoding favorites document")
		return models.FavoritesSnapshot{}, fmt.Errorf("%w: %w", ErrDecodingFavorites, err)
	}
	if snapshot.Favorites == nil {
		snapshot.Favorites = make(map[string]json.RawMessage)
	}

	return snapshot, nil
}

func (f *favoritesFileStore) write(_ context.Context, snapshot models.FavoritesSnapshot) error {
	payload, err := json.MarshalIndent(snapshot, "", " ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFavorites, err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create profile dir: %w", ErrWritingFavorites, err)
	}

	tmp, err := os.CreateTemp(dir, models.FavoritesFileName+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFavorites, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFavorites, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFavorites, err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFavorites, err)
	}

	f.logger.Debug().Str("func", "favoritesFileStore.Write").Int("count", snapshot.Len()).Msg("favorites document written")
	return nil
}
