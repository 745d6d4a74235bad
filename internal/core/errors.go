package core

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a delete or update that referenced an unknown id.
// The store leaves both memory and persistence untouched when returning it.
var ErrNotFound = errors.New("not found")

// AdapterError wraps a persistence read or write failure. It is non-fatal:
// the in-memory slot keeps the accepted mutation (or its default on load) and
// the caller decides whether to retry, revert, or just report.
type AdapterError struct {
	Slot string // which slot the operation targeted
	Op   string // "get" or "set"
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Slot, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// IsAdapterError reports whether err is (or wraps) an AdapterError.
func IsAdapterError(err error) bool {
	var ae *AdapterError
	return errors.As(err, &ae)
}
