// Package optionstore implements the option store as a YAML file.
package optionstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.OptionStore = (*FileStore)(nil)

// FileStore keeps options in a single YAML mapping. Every call re-reads the file
// so concurrent CLI invocations and a running server observe each other's writes.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := opts[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts, err := s.load()
	if err != nil {
		return err
	}
	if cur, ok := opts[key]; ok && cur == value {
		return nil
	}
	opts[key] = value
	return s.save(opts)
}

// Delete removes key.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := opts[key]; !ok {
		return nil
	}
	delete(opts, key)
	return s.save(opts)
}

func (s *FileStore) load() (map[string]string, error) {
	//nolint:gosec // Path comes from the site configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionStoreReadFailed.Error()), "path", s.path)
	}

	opts := make(map[string]string)
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionStoreUnmarshalFailed.Error()), "path", s.path)
	}
	return opts, nil
}

func (s *FileStore) save(opts map[string]string) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return zerr.Wrap(err, domain.ErrOptionStoreWriteFailed.Error())
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// atomicWriteFile writes data to a temp file in the same directory and renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".options-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
