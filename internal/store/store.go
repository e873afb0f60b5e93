package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FileStore persists named record collections as JSON array files under a
// single directory. Collections are read and rewritten whole; there are no
// partial updates. A store-wide lock serializes read-modify-write sequences
// so concurrent writers cannot lose updates.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Init creates each named store as an empty collection if its file is
// absent, so a first run leaves well-formed files on disk.
func (s *FileStore) Init(names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		exists, err := afero.Exists(s.fs, s.path(name))
		if err != nil {
			return fmt.Errorf("failed to stat store %s: %w", name, err)
		}
		if exists {
			continue
		}
		if err := s.save(name, []struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes the named collection into dst. A missing file is treated as
// an empty collection.
func (s *FileStore) Load(name string, dst any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(name, dst)
}

// Save overwrites the named collection with records.
func (s *FileStore) Save(name string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(name, records)
}

// Update loads the named collection into dst, invokes fn, and saves whatever
// records fn returns. The whole sequence runs under the store lock, so the
// read-modify-write is atomic with respect to other writers. If fn returns
// an error nothing is written and the collection keeps its pre-update state.
func (s *FileStore) Update(name string, dst any, fn func() (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(name, dst); err != nil {
		return err
	}
	records, err := fn()
	if err != nil {
		return err
	}
	return s.save(name, records)
}

func (s *FileStore) load(name string, dst any) error {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("[]")
		} else {
			return fmt.Errorf("failed to read store %s: %w", name, err)
		}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode store %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store %s: %w", name, err)
	}

	// Write to a temp file and rename so readers never see a partial file.
	tmp := s.path(name) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("failed to replace store %s: %w", name, err)
	}
	return nil
}
