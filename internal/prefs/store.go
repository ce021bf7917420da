// Package prefs persists the light/dark display preference.
package prefs

import (
	"sync"

	"litedata/internal/log"
	"litedata/pkg/types"
)

// ThemeKey is the storage key for the display mode.
const ThemeKey = "theme"

// Store holds the current display mode and writes every change through to
// Storage.
type Store struct {
	mu        sync.Mutex
	storage   Storage
	mode      types.DisplayMode
	listeners map[int]func(types.DisplayMode)
	nextID    int
}

// NewStore reads the persisted mode back, falling back to light, and writes
// the resolved mode immediately. The returned store is always usable; a
// non-nil error reports a storage failure that was worked around.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{
		storage:   storage,
		mode:      types.DefaultDisplayMode,
		listeners: make(map[int]func(types.DisplayMode)),
	}

	mode, readErr := s.read()
	if readErr != nil {
		log.LogWithError(readErr).Warn("cannot read display mode, using default")
	} else {
		s.mode = mode
	}

	if err := storage.Set(ThemeKey, string(s.mode)); err != nil {
		log.LogWithError(err).Error("cannot persist display mode")
		return s, err
	}
	return s, readErr
}

// read returns the stored mode, or the default when missing or invalid.
func (s *Store) read() (types.DisplayMode, error) {
	raw, ok, err := s.storage.Get(ThemeKey)
	if err != nil {
		return types.DefaultDisplayMode, err
	}
	if !ok {
		return types.DefaultDisplayMode, nil
	}
	mode, err := types.ParseDisplayMode(raw)
	if err != nil {
		log.LogWithFields(log.F("value", raw)).Warn("ignoring invalid display mode")
		return types.DefaultDisplayMode, nil
	}
	return mode, nil
}

// Mode returns the current display mode.
func (s *Store) Mode() types.DisplayMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode and persists it.
func (s *Store) Toggle() (types.DisplayMode, error) {
	s.mu.Lock()
	next := s.mode.Toggle()
	s.mu.Unlock()
	return next, s.Set(next)
}

// Set changes the mode and persists it. The in-memory mode changes even when
// the write fails.
func (s *Store) Set(mode types.DisplayMode) error {
	if _, err := types.ParseDisplayMode(string(mode)); err != nil {
		return err
	}
	s.apply(mode)

	if err := s.storage.Set(ThemeKey, string(mode)); err != nil {
		log.LogWithError(err).Error("cannot persist display mode")
		return err
	}
	log.LogWithFields(log.F("mode", string(mode))).Debug("display mode saved")
	return nil
}

// Reload re-reads storage, picking up changes made by another process.
func (s *Store) Reload() error {
	mode, err := s.read()
	if err != nil {
		return err
	}
	if s.apply(mode) {
		log.LogWithFields(log.F("mode", string(mode))).Info("display mode changed externally")
	}
	return nil
}

// Subscribe registers fn for mode changes.
func (s *Store) Subscribe(fn func(types.DisplayMode)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// apply installs mode and notifies listeners when it differs.
func (s *Store) apply(mode types.DisplayMode) bool {
	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return false
	}
	s.mode = mode
	listeners := make([]func(types.DisplayMode), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(mode)
	}
	return true
}
