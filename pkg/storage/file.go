package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/budget-zero/backend/pkg/codec"
)

// FileStorage stores the snapshot as a JSON backup document.
type FileStorage struct {
	path    string
	version string
}

// NewFile returns a storage writing to the file at path.
func NewFile(path, version string) *FileStorage {
	return &FileStorage{path: path, version: version}
}

func (f *FileStorage) Load(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	backup, transactions, err := codec.ReadBackup(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	return Snapshot{
		Transactions: transactions,
		Categories:   backup.Categories,
		Labels:       backup.Labels,
	}, nil
}

// Save writes the snapshot to a temporary file and renames it, so that the
// file always contains a complete snapshot.
func (f *FileStorage) Save(_ context.Context, snapshot Snapshot) error {
	data, err := json.MarshalIndent(codec.NewBackup(f.version, snapshot.Transactions, snapshot.Categories, snapshot.Labels), "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	return nil
}

// Ping fails if the file exists but cannot be accessed.
func (f *FileStorage) Ping(_ context.Context) error {
	if _, err := os.Stat(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}
