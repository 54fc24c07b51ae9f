package internal

import (
	"errors"
	"fmt"
)

// StoreError represents a database file that is missing, unreadable, or
// not a valid workspace state store.
type StoreError struct {
	Path string
	Op   string // "open", "query"
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err indicates an unusable workspace database.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// ExportError represents a failure writing one rendered session.
type ExportError struct {
	SessionID string
	Path      string
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.SessionID, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
