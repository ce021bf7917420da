//go:build !nogui

package gui

import (
	"fyne.io/fyne/v2"
)

// PreferenceStorage keeps display preferences in fyne's per-application
// store.
type PreferenceStorage struct {
	prefs fyne.Preferences
}

func NewPreferenceStorage(p fyne.Preferences) *PreferenceStorage {
	return &PreferenceStorage{prefs: p}
}

// Get reports an empty value as missing.
func (s *PreferenceStorage) Get(key string) (string, bool, error) {
	v := s.prefs.String(key)
	return v, v != "", nil
}

func (s *PreferenceStorage) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}
