package store

import (
	"context"

	"github.com/MKhiriev/share-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FavoritesStore reads and writes the favorites document as a whole.
type FavoritesStore interface {
	Read(ctx context.Context) (models.FavoritesSnapshot, error)
	Write(ctx context.Context, snapshot models.FavoritesSnapshot) error
}

// BundleRegistry is the local registry of installed bundles and their
// favorite flags.
type BundleRegistry interface {
	GetBundle(ctx context.Context, key models.BundleKey) (models.Bundle, error)
	SetBundleFavorite(ctx context.Context, key models.BundleKey, favorite bool) error
	AddBundle(ctx context.Context, bundle models.Bundle) error
	ListBundles(ctx context.Context) ([]models.Bundle, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
