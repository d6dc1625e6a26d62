// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// FavoritesFileName is the name of the favorites document inside the user
// profile directory.
const FavoritesFileName = "favorite_activities"

// ErrMalformedBundleKey is returned by [ParseBundleKey] when the key is not
// exactly "<bundle-id> <version>".
var ErrMalformedBundleKey = errors.New("malformed bundle key")

// FavoriteMarker is the marker written for entries created locally. Markers
// received from other participants are kept as-is.
var FavoriteMarker = json.RawMessage(`true`)

// BundleKey identifies one installed version of a bundle.
type BundleKey struct {
	BundleID string
	Version  string
}

// String returns the space-joined form used as a key in [FavoritesSnapshot].
func (k BundleKey) String() string {
	return k.BundleID + " " + k.Version
}

// ParseBundleKey splits a "<bundle-id> <version>" key.
func ParseBundleKey(s string) (BundleKey, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return BundleKey{}, ErrMalformedBundleKey
	}

	return BundleKey{BundleID: parts[0], Version: parts[1]}, nil
}

// FavoritesSnapshot is the full favorites document:
//
//	{"favorites": {"<bundle-id> <version>": <marker>, ...}}
//
// Membership of a key is what makes a bundle version a favorite; the marker
// value is opaque. A snapshot always replaces the whole set, it is never a delta.
type FavoritesSnapshot struct {
	Favorites map[string]json.RawMessage `json:"favorites"`
}

// NewFavoritesSnapshot builds a snapshot containing keys, each with
// [FavoriteMarker].
func NewFavoritesSnapshot(keys ...BundleKey) FavoritesSnapshot {
	s := FavoritesSnapshot{Favorites: make(map[string]json.RawMessage, len(keys))}
	for _, k := range keys {
		s.Favorites[k.String()] = FavoriteMarker
	}
	return s
}

// Len returns the number of entries in the snapshot.
func (s FavoritesSnapshot) Len() int {
	return len(s.Favorites)
}

// Has reports whether key is a favorite in the snapshot.
func (s FavoritesSnapshot) Has(key BundleKey) bool {
	_, ok := s.Favorites[key.String()]
	return ok
}

// RawKeys returns the raw entry keys in sorted order.
func (s FavoritesSnapshot) RawKeys() []string {
	keys := make([]string, 0, len(s.Favorites))
	for k := range s.Favorites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the parsed bundle keys in sorted order, skipping malformed
// entries. The skipped raw keys are returned separately.
func (s FavoritesSnapshot) Keys() (keys []BundleKey, malformed []string) {
	for _, raw := range s.RawKeys() {
		k, err := ParseBundleKey(raw)
		if err != nil {
			malformed = append(malformed, raw)
			continue
		}
		keys = append(keys, k)
	}
	return keys, malformed
}

// MarshalJSON always emits a "favorites" object, even for an empty snapshot.
func (s FavoritesSnapshot) MarshalJSON() ([]byte, error) {
	type plain FavoritesSnapshot
	if s.Favorites == nil {
		s.Favorites = map[string]json.RawMessage{}
	}
	return json.Marshal(plain(s))
}
