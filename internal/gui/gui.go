//go:build !nogui

// Package gui is the desktop front end of the form builder, built on fyne.
package gui

import (
	"context"

	"litedata/internal/config"
	"litedata/internal/session"

	"fyne.io/fyne/v2/app"
)

// AppID keys the fyne preference store.
const AppID = "io.github.litedata"

// StartGUI opens the desktop window and blocks until it is closed. The
// display preference lives in fyne's own preference store unless opts
// replace the storage.
func StartGUI(ctx context.Context, cfg *config.Config, opts ...session.Option) error {
	fyneApp := app.NewWithID(AppID)

	opts = append([]session.Option{session.WithStorage(NewPreferenceStorage(fyneApp.Preferences()))}, opts...)
	sess := session.New(cfg, opts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := NewApp(ctx, fyneApp, sess)
	sess.Start(ctx)
	a.Run()

	cancel()
	sess.Wait()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
