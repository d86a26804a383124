// Package storage persists the state of a budget. The budget logic does not
// depend on any backend; it only loads a snapshot on start and saves one
// after every change.
package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/budget-zero/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Snapshot is the persisted state of a budget.
type Snapshot struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Labels       []models.Label
}

// Empty reports whether nothing has been stored yet.
func (s Snapshot) Empty() bool {
	return len(s.Transactions) == 0 && len(s.Categories) == 0 && len(s.Labels) == 0
}

// Storage loads and saves snapshots.
type Storage interface {
	// Load returns the last saved snapshot. It returns an empty snapshot
	// if nothing has been saved yet.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot Snapshot) error

	// Ping checks that the backend can be reached.
	Ping(ctx context.Context) error

	Close() error
}

// Type selects a storage backend.
type Type string

const (
	Memory   Type = "memory"
	File     Type = "file"
	SQLite   Type = "sqlite"
	Postgres Type = "postgres"
)

// IsValid reports whether the type is a known backend.
func (t Type) IsValid() bool {
	switch t {
	case Memory, File, SQLite, Postgres:
		return true
	}
	return false
}

// Config configures the storage backend.
type Config struct {
	Type Type

	// Directory for the file and sqlite backends
	DataDir string

	// Data source name for the database backends. For sqlite, it defaults to
	// a file in DataDir.
	DSN string

	// Version of the backend, written into file backups
	Version string
}

// FileName is the name of the backup file of the file backend.
const FileName = "budget.json"

// DatabaseName is the name of the database file of the sqlite backend.
const DatabaseName = "budget.db"

// Open creates the storage backend selected by the configuration.
func Open(ctx context.Context, config Config) (Storage, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid storage type: %q", config.Type)
	}

	var (
		s   Storage
		err error
	)

	switch config.Type {
	case Memory:
		s = NewMemory()
	case File:
		s = NewFile(filepath.Join(config.DataDir, FileName), config.Version)
	case SQLite:
		dsn := config.DSN
		if dsn == "" {
			dsn = filepath.Join(config.DataDir, DatabaseName)
		}
		s, err = OpenSQLite(ctx, dsn)
	case Postgres:
		s, err = OpenPostgres(ctx, config.DSN)
	}

	if err != nil {
		return nil, err
	}

	log.Info().Str("storage", string(config.Type)).Msg("Initialized storage")
	return s, nil
}
