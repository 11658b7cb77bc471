package app

import (
	"errors"
	"fmt"
)

// Sentinel kinds for import errors.
var (
	// ErrImportInFlight rejects a second import for an event while one
	// is still running.
	ErrImportInFlight = errors.New("import already in flight")

	// ErrAlreadyImported rejects importing into an event that already
	// has schedule data.
	ErrAlreadyImported = errors.New("event already has schedule data")
)

// StoreError reports a store failure together with the import step it
// happened in. The underlying error is propagated verbatim.
type StoreError struct {
	Step string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure at step %s: %v", e.Step, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(step string, err error) error {
	return &StoreError{Step: step, Err: err}
}
