package schedule

import (
	"errors"
	"fmt"
)

// Sentinel kinds for schedule parsing errors.
var (
	// ErrMalformedDocument marks a document the tabular reader could not
	// decode at all. Nothing downstream of the reader runs.
	ErrMalformedDocument = errors.New("malformed schedule document")

	// ErrUnsupportedVersion marks a document whose declared schema
	// version is not the supported one. Checked before any block is read.
	ErrUnsupportedVersion = errors.New("unsupported schedule version")

	// ErrUnresolvedReference marks a table or room name that does not
	// exist in the persisted entity set. It aborts the whole derivation;
	// a partially resolved match or session is never emitted.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
}

func unsupportedVersion(version int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, SupportedVersion)
}

func unresolved(kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnresolvedReference, kind, name)
}
