//go:build !nogui

package gui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"litedata/internal/catalog"
	"litedata/internal/log"
	"litedata/internal/session"
	"litedata/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	sess       *session.Session
	ctx        context.Context

	mu        sync.Mutex
	rows      []*rowWidgets
	exporting bool

	rowsBox      *fyne.Container
	countEntry   *widget.Entry
	formatSelect *widget.Select
	submitButton *widget.Button
	themeButton  *widget.Button
	noticeLabel  *widget.Label
	statusLabel  *widget.Label
	progress     *widget.ProgressBarInfinite
}

// NewApp builds the main window for sess. Nothing is shown until Run.
func NewApp(ctx context.Context, fyneApp fyne.App, sess *session.Session) *App {
	a := &App{
		fyneApp:    fyneApp,
		mainWindow: fyneApp.NewWindow("Lite Data"),
		sess:       sess,
		ctx:        ctx,
	}
	a.setupMainWindow()

	sess.Fields.Subscribe(func([]types.FieldSpec) { a.refreshRows() })
	sess.OnAllowed(func(set catalog.AllowedSet) { a.allowedLoaded(set) })
	sess.Board.Subscribe(func(n types.Notice, visible bool) { a.showNotice(n, visible) })
	sess.Prefs.Subscribe(a.applyMode)

	a.applyMode(sess.Prefs.Mode())
	a.refreshRows()
	return a
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// GetMainWindow returns the main application window
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	title := canvas.NewText("Lite Data", theme.PrimaryColor())
	title.TextSize = 24
	title.TextStyle = fyne.TextStyle{Bold: true}

	a.themeButton = widget.NewButton("", func() {
		if _, err := a.sess.Prefs.Toggle(); err != nil {
			log.LogWithError(err).Warn("display mode not saved")
		}
	})

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), a.addField),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), func() {
			dialog.ShowInformation("About Lite Data",
				"Describe the columns you need, pick a row count and a\n"+
					"file format, and the service generates a file of fake data.",
				a.mainWindow)
		}),
	)

	a.rowsBox = container.NewVBox()
	addButton := widget.NewButtonWithIcon("Add field", theme.ContentAddIcon(), a.addField)

	a.countEntry = widget.NewEntry()
	a.countEntry.SetText(strconv.Itoa(a.sess.Config.Export.DefaultRows))
	a.countEntry.OnChanged = func(string) { a.updateSubmit() }

	formats := types.FileFormats()
	labels := make([]string, len(formats))
	for i, f := range formats {
		labels[i] = f.Label()
	}
	a.formatSelect = widget.NewSelect(labels, nil)
	a.formatSelect.SetSelected(a.sess.Config.DefaultFormat().Label())

	a.submitButton = widget.NewButtonWithIcon("Generate", theme.DownloadIcon(), a.submit)
	a.submitButton.Importance = widget.HighImportance

	a.noticeLabel = widget.NewLabel("")
	a.noticeLabel.Wrapping = fyne.TextWrapWord
	a.statusLabel = widget.NewLabel("Loading data types…")
	a.progress = widget.NewProgressBarInfinite()
	a.progress.Stop()
	a.progress.Hide()

	footer := container.NewVBox(
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Rows", a.countEntry),
			widget.NewFormItem("Format", a.formatSelect),
		),
		container.NewPadded(a.submitButton),
		a.progress,
		a.noticeLabel,
	)

	content := container.NewBorder(
		container.NewVBox(
			container.NewHBox(title, a.themeButton),
			toolbar,
		),
		container.NewVBox(footer, a.statusLabel),
		nil,
		nil,
		container.NewVScroll(container.NewVBox(a.rowsBox, addButton)),
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Resize(fyne.NewSize(720, 560))
}

func (a *App) addField() {
	a.sess.Fields.Append()
}

// refreshRows re-derives the rows. Widgets are rebuilt only when the number
// of rows changed, so an entry being typed in keeps its focus.
func (a *App) refreshRows() {
	rows := a.sess.Rows()

	a.mu.Lock()
	rebuild := len(rows) != len(a.rows)
	if rebuild {
		a.rows = make([]*rowWidgets, len(rows))
		for i := range rows {
			a.rows[i] = newRowWidgets(a, i)
		}
	}
	widgets := append([]*rowWidgets(nil), a.rows...)
	a.mu.Unlock()

	for i, r := range rows {
		widgets[i].update(r)
	}
	if rebuild {
		objs := make([]fyne.CanvasObject, len(widgets))
		for i, w := range widgets {
			objs[i] = w.container
		}
		a.rowsBox.Objects = objs
		a.rowsBox.Refresh()
	}
	a.updateSubmit()
}

func (a *App) allowedLoaded(set catalog.AllowedSet) {
	if set.Len() == 0 {
		a.statusLabel.SetText("Data types unavailable; check the service connection")
	} else {
		a.statusLabel.SetText(fmt.Sprintf("%d data types available", set.Len()))
	}
	a.refreshRows()
}

func (a *App) showNotice(n types.Notice, visible bool) {
	if !visible {
		a.noticeLabel.SetText("")
		return
	}
	text := "✔ " + n.Message
	if n.Level == types.NoticeError {
		text = "✖ " + n.Message
	}
	if n.Detail != "" {
		text += "\n" + n.Detail
	}
	a.noticeLabel.SetText(text)
}

func (a *App) applyMode(mode types.DisplayMode) {
	if mode == types.Dark {
		a.fyneApp.Settings().SetTheme(theme.DarkTheme())
		a.themeButton.SetText("☀ Light mode")
	} else {
		a.fyneApp.Settings().SetTheme(theme.LightTheme())
		a.themeButton.SetText("☾ Dark mode")
	}
}

func (a *App) format() types.FileFormat {
	for _, f := range types.FileFormats() {
		if f.Label() == a.formatSelect.Selected {
			return f
		}
	}
	return a.sess.Config.DefaultFormat()
}

func (a *App) updateSubmit() {
	a.mu.Lock()
	busy := a.exporting
	a.mu.Unlock()
	if !busy && a.sess.CanSubmit() {
		a.submitButton.Enable()
	} else {
		a.submitButton.Disable()
	}
}

func (a *App) submit() {
	count, err := strconv.Atoi(strings.TrimSpace(a.countEntry.Text))
	if err == nil {
		err = a.sess.Gate.CheckCount(count)
	}
	if err != nil {
		a.statusLabel.SetText("Enter a valid row count")
		return
	}

	a.mu.Lock()
	if a.exporting {
		a.mu.Unlock()
		return
	}
	a.exporting = true
	a.mu.Unlock()

	format := a.format()
	a.submitButton.Disable()
	a.progress.Show()
	a.progress.Start()
	a.statusLabel.SetText(fmt.Sprintf("Generating %d rows as %s", count, format.Label()))

	go func() {
		res, err := a.sess.Submit(a.ctx, count, format)

		a.mu.Lock()
		a.exporting = false
		a.mu.Unlock()

		a.progress.Stop()
		a.progress.Hide()
		if err != nil {
			a.statusLabel.SetText("")
		} else {
			a.statusLabel.SetText("Saved " + res.Path)
		}
		a.updateSubmit()
	}()
}

// Exporting reports whether a submission is pending.
func (a *App) Exporting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exporting
}
