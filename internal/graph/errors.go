package graph

import "errors"

// Sentinel errors for graph ingestion. Dangling references are deliberately
// not an error kind here: source files routinely contain them, so the
// builder drops the reference, logs it, and keeps loading.
var (
	// ErrFileNotFound is returned by Open when the source file is missing.
	ErrFileNotFound = errors.New("gedcom file not found")

	// ErrNoGraphOpen is returned by Manager.Snapshot when no graph is open.
	// Query accessors never return it; they report empty results instead.
	ErrNoGraphOpen = errors.New("no graph open")
)
