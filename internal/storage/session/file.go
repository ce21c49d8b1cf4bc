// Package session provides durable single-record stores for the
// authenticated session. Both implementations share the contract:
// absent is (ok=false, nil error), and unparseable stored data is
// treated as absent rather than failing the caller.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"checkinn/internal/domain"
)

// FileStore keeps the session as one JSON file on the client device,
// the local analog of the mobile app's keyed async storage.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (f *FileStore) Load(ctx context.Context) (domain.Session, bool, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var s domain.Session
	if err := json.Unmarshal(b, &s); err != nil {
		// corrupt record: treat as absent, keep the process alive
		log.Warn().Err(err).Str("path", f.path).Msg("stored session unreadable, treating as absent")
		return domain.Session{}, false, nil
	}
	return s, true, nil
}

func (f *FileStore) Save(ctx context.Context, s domain.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	// write-then-rename so a crash mid-save never leaves a torn record
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
