package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrBundleNotFound is returned when the requested bundle version is not
	// installed locally.
	ErrBundleNotFound = errors.New("bundle was not found")

	// ErrMalformedBundleInfo is returned when an installed bundle manifest
	// lacks its id or version.
	ErrMalformedBundleInfo = errors.New("malformed bundle info")

	// ErrDecodingFavorites is returned when the favorites document on disk is
	// not valid JSON.
	ErrDecodingFavorites = errors.New("failed to decode favorites document")

	// ErrWritingFavorites is returned when the favorites document cannot be
	// persisted.
	ErrWritingFavorites = errors.New("failed to write favorites document")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single bundle row fails.
	ErrScanningRow = errors.New("failed to scan bundle row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan bundle rows")
)
