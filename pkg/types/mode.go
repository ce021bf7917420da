package types

import "fmt"

// DisplayMode is the light/dark color preference.
type DisplayMode string

const (
	Light DisplayMode = "light"
	Dark  DisplayMode = "dark"
)

// DefaultDisplayMode applies when nothing was persisted.
const DefaultDisplayMode = Light

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseDisplayMode accepts exactly "light" or "dark".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case Light, Dark:
		return DisplayMode(s), nil
	}
	return "", fmt.Errorf("unknown display mode %q", s)
}
