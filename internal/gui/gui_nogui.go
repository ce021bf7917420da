//go:build nogui
// +build nogui

package gui

import (
	"context"
	"fmt"

	"litedata/internal/config"
	"litedata/internal/session"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(ctx context.Context, cfg *config.Config, opts ...session.Option) error {
	return fmt.Errorf("GUI not available in this build; use 'litedata tui' or 'litedata prompt'")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
