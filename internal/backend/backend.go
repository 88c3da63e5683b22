// Package backend builds the dataset source selected by configuration.
package backend

import (
	"context"

	"contratos/internal/dataset"
)

// Type represents the type of dataset backend
type Type string

const (
	EmbedBackend  Type = "embed"
	DirBackend    Type = "dir"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case EmbedBackend, DirBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// Directory backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}

// CleanupFunc releases backend resources
type CleanupFunc func() error

// Result contains the source and an optional cleanup function
type Result struct {
	Source  dataset.Source
	Cleanup CleanupFunc
}

// Factory creates dataset sources based on configuration
type Factory interface {
	CreateSource(ctx context.Context, config Config) (*Result, error)
}
