package tui

import (
	"context"
	"errors"

	"litedata/internal/catalog"
	"litedata/internal/session"
	"litedata/internal/tui/messages"
	"litedata/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the session's background work and blocks until the user quits.
func Run(ctx context.Context, sess *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, sess)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	sess.OnAllowed(func(set catalog.AllowedSet) {
		p.Send(messages.AllowedLoadedMsg{Set: set})
	})
	unsubscribe := sess.Prefs.Subscribe(func(mode types.DisplayMode) {
		p.Send(messages.ThemeChangedMsg{Mode: mode})
	})
	defer unsubscribe()

	sess.Start(ctx)
	_, err := p.Run()
	cancel()
	sess.Wait()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
