package syncer

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured   = errors.New("sheet id and api key are required")
	ErrNotConnected    = errors.New("not connected; run a connection test first")
	ErrSyncInProgress  = errors.New("a sync is already running")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrInvalidDetail   = errors.New("resource detail needs a name and a positive amount")
	ErrUnknownResource = errors.New("unknown resource")
)

// PushError is a failed remote write for one entity. Local state has
// already been changed when it is returned.
type PushError struct {
	Entity string
	Range  string
	Err    error
}

func (e PushError) Error() string {
	return fmt.Sprintf("push %s (%s): %v", e.Entity, e.Range, e.Err)
}

func (e PushError) Unwrap() error { return e.Err }
