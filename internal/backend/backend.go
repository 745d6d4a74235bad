package backend

import (
	"context"

	"fintrack/internal/kv"
	"fintrack/internal/store"
)

// Type selects which key-value backend persists the slots.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
	Sheets Type = "sheets"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite, Sheets:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types
func Types() []Type {
	return []Type{Memory, SQLite, Sheets}
}

// CleanupFunc releases resources a backend holds open.
type CleanupFunc func() error

// Result carries the created adapter, an optional change notifier, and a
// cleanup function (nil when there is nothing to release).
type Result struct {
	Adapter  kv.Adapter
	Notifier store.Notifier
	Cleanup  CleanupFunc
}

// Factory creates adapters based on configuration
type Factory interface {
	CreateAdapter(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for adapter creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Change notifications (optional)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets specific (credentials come from the environment)
	GoogleSpreadsheetID string
	GoogleSheetName     string
}
