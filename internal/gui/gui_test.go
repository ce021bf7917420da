//go:build !nogui

package gui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"litedata/internal/api"
	"litedata/internal/config"
	"litedata/internal/prefs"
	"litedata/internal/session"
	"litedata/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct{ ids []string }

func (f stubFetcher) FetchConfig(context.Context) (*api.ServiceConfig, error) {
	return &api.ServiceConfig{AllowedDataTypes: f.ids}, nil
}

type stubExporter struct{}

func (stubExporter) Export(context.Context, types.ExportRequest) (*api.Download, error) {
	return &api.Download{FilenameHint: "people.csv", Data: []byte("email\na@b.c\n")}, nil
}

func newTestApp(t *testing.T) (*App, fyne.App, string) {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Export.OutputDir = t.TempDir()

	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	sess := session.New(cfg,
		session.WithStorage(NewPreferenceStorage(fyneApp.Preferences())),
		session.WithFetcher(stubFetcher{ids: []string{"name", "email"}}),
		session.WithExporter(stubExporter{}))

	a := NewApp(context.Background(), fyneApp, sess)
	sess.Start(context.Background())
	sess.Wait()
	return a, fyneApp, cfg.Export.OutputDir
}

func TestNewApp(t *testing.T) {
	a, _, _ := newTestApp(t)

	require.NotNil(t, a.GetMainWindow())
	require.Len(t, a.rows, 1)
	assert.Equal(t, "Field 1", a.rows[0].title.Text)
	assert.Empty(t, a.rows[0].typeSel.Selected)
	assert.Len(t, a.rows[0].typeSel.Options, 18)
	assert.Contains(t, a.rows[0].typeSel.Options, "Phone (unavailable)")
	assert.Contains(t, a.rows[0].typeSel.Options, "Email")
	assert.True(t, a.submitButton.Disabled())
	assert.Equal(t, "2 data types available", a.statusLabel.Text)
	assert.Equal(t, "10", a.countEntry.Text)
	assert.Equal(t, "CSV", a.formatSelect.Selected)
}

func TestSelectTypeAndName(t *testing.T) {
	a, _, _ := newTestApp(t)
	row := a.rows[0]

	row.typeSel.SetSelected("Email")
	assert.Equal(t, types.FieldSpec{DataType: "email", Name: "email"}, a.sess.Fields.Fields()[0])
	assert.Equal(t, "email", row.nameEntry.Text)
	assert.False(t, a.submitButton.Disabled())

	row.nameEntry.SetText("contact")
	assert.Equal(t, "contact", a.sess.Fields.Fields()[0].Name)

	row.typeSel.SetSelected("Name")
	assert.Equal(t, types.FieldSpec{DataType: "name", Name: "contact"}, a.sess.Fields.Fields()[0])
}

func TestUnavailableTypeIsRefused(t *testing.T) {
	a, _, _ := newTestApp(t)
	row := a.rows[0]

	row.typeSel.SetSelected("Phone (unavailable)")
	assert.Equal(t, types.FieldSpec{}, a.sess.Fields.Fields()[0])
	assert.Empty(t, row.typeSel.Selected)
	assert.Contains(t, a.statusLabel.Text, "not offered")
}

func TestAddAndDeleteRows(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.addField()
	require.Len(t, a.rows, 2)
	assert.Len(t, a.rowsBox.Objects, 2)
	assert.Equal(t, "Field 2", a.rows[1].title.Text)

	a.rows[1].typeSel.SetSelected("Name")
	test.Tap(a.rows[0].deleteBtn)

	require.Len(t, a.rows, 1)
	assert.Equal(t, []types.FieldSpec{{DataType: "name", Name: "name"}}, a.sess.Fields.Fields())
	assert.Equal(t, "Name", a.rows[0].typeSel.Selected)
	assert.Equal(t, "Field 1", a.rows[0].title.Text)

	test.Tap(a.rows[0].deleteBtn)
	assert.Empty(t, a.rows)
	assert.True(t, a.submitButton.Disabled())
}

func TestSubmitSavesFile(t *testing.T) {
	a, _, dir := newTestApp(t)
	a.rows[0].typeSel.SetSelected("Email")

	test.Tap(a.submitButton)
	require.Eventually(t, func() bool { return !a.Exporting() }, 2*time.Second, 10*time.Millisecond)

	assert.Contains(t, a.noticeLabel.Text, "Data generated successfully!")
	data, err := os.ReadFile(filepath.Join(dir, "people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "email\na@b.c\n", string(data))
	assert.False(t, a.submitButton.Disabled())
}

func TestSubmitRejectsBadCount(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.rows[0].typeSel.SetSelected("Email")
	a.countEntry.SetText("0")

	test.Tap(a.submitButton)
	assert.False(t, a.Exporting())
	assert.Equal(t, "Enter a valid row count", a.statusLabel.Text)
}

func TestThemeToggle(t *testing.T) {
	a, fyneApp, _ := newTestApp(t)
	assert.Equal(t, "☾ Dark mode", a.themeButton.Text)

	test.Tap(a.themeButton)
	assert.Equal(t, types.Dark, a.sess.Prefs.Mode())
	assert.Equal(t, "dark", fyneApp.Preferences().String(prefs.ThemeKey))
	assert.Equal(t, "☀ Light mode", a.themeButton.Text)
}

func TestPreferenceStorage(t *testing.T) {
	s := NewPreferenceStorage(test.NewApp().Preferences())

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "dark"))
	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}
