// Package file persists the whole ledger state as a JSON snapshot on
// disk. It is the local-storage analog of the persistence contract and the
// default backend.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kmwaniki/pesa/internal/ledger"
)

type Store struct {
	path string
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	return &Store{path: path}, nil
}

// LoadState reads the snapshot. A missing file means no state has been
// persisted yet and returns nil.
func (s *Store) LoadState(_ context.Context) (*ledger.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st ledger.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decoding state file: %w", err)
	}

	return &st, nil
}

// SaveState writes the snapshot via a temp file and rename, so a crash
// mid-write never leaves a torn state file behind.
func (s *Store) SaveState(_ context.Context, st *ledger.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}

	return nil
}
