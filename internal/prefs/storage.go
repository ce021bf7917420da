package prefs

import (
	"os"
	"path/filepath"
	"sync"

	"litedata/internal/errors"

	"gopkg.in/yaml.v3"
)

// Storage is a durable string key/value store.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryStorage keeps values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// FileStorage keeps values in a flat YAML map. Writes replace the file
// atomically.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage uses the YAML file at path. The file is created on the first
// write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file.
func (f *FileStorage) Path() string {
	return f.path
}

func (f *FileStorage) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	if values[key] == value {
		if _, statErr := os.Stat(f.path); statErr == nil {
			return nil
		}
	}
	values[key] = value
	return f.store(values)
}

func (f *FileStorage) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.NewFileError("cannot read preferences", f.path, errors.FileAccessDenied, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.NewFileError("cannot parse preferences", f.path, errors.FileAccessDenied, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

func (f *FileStorage) store(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "encoding preferences")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError("cannot create preferences directory", dir, errors.FileCreateFailed, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return errors.NewFileError("cannot write preferences", f.path, errors.FileCreateFailed, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewFileError("cannot write preferences", f.path, errors.FileCreateFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewFileError("cannot write preferences", f.path, errors.FileCreateFailed, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.NewFileError("cannot replace preferences", f.path, errors.FileCreateFailed, err)
	}
	return nil
}
