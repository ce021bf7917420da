// Package tui is the terminal front end of the form builder.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"litedata/internal/api"
	"litedata/internal/editor"
	"litedata/internal/errors"
	"litedata/internal/log"
	"litedata/internal/session"
	"litedata/internal/tui/common"
	"litedata/internal/tui/components"
	"litedata/internal/tui/messages"
	"litedata/internal/tui/styles"
	"litedata/internal/tui/views"
	"litedata/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	sess *session.Session
	ctx  context.Context

	keys   keyMap
	help   help.Model
	styles styles.Styles
	mode   types.DisplayMode

	nameInputs []textinput.Model
	rowCount   textinput.Model
	formatIdx  int
	focus      common.Focus

	status    *components.StatusBar
	exporting bool
	preview   *common.Preview
	showHelp  bool
}

// New creates the model for sess. ctx is handed to export and preview
// requests.
func New(ctx context.Context, sess *session.Session) *Model {
	rc := textinput.New()
	rc.Placeholder = "rows"
	rc.CharLimit = 7
	rc.Width = 8
	rc.SetValue(strconv.Itoa(sess.Config.Export.DefaultRows))

	m := &Model{
		sess:     sess,
		ctx:      ctx,
		keys:     defaultKeyMap(),
		help:     help.New(),
		rowCount: rc,
	}
	def := sess.Config.DefaultFormat()
	for i, f := range types.FileFormats() {
		if f == def {
			m.formatIdx = i
		}
	}
	m.status = components.NewStatusBar(m.styles.Help)
	m.applyMode(sess.Prefs.Mode())
	m.syncInputs()
	m.applyFocus()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case messages.AllowedLoadedMsg:
		if msg.Set.Len() == 0 {
			m.status.SetText("Data types unavailable; check the service connection")
		} else {
			m.status.SetText(fmt.Sprintf("%d data types available", msg.Set.Len()))
		}
		return m, nil

	case messages.ThemeChangedMsg:
		m.applyMode(msg.Mode)
		return m, nil

	case messages.ExportDoneMsg:
		m.exporting = false
		m.status.SetLoading(false)
		if msg.Err != nil {
			m.status.SetText("")
		} else {
			m.status.SetText(fmt.Sprintf("Saved %s", msg.Result.Path))
		}
		return m, m.expireNotice()

	case messages.PreviewMsg:
		m.preview = &common.Preview{Header: msg.Header, Rows: msg.Rows, Err: msg.Err}
		return m, nil

	case messages.NoticeExpiredMsg:
		return m, nil

	case messages.ErrorMsg:
		m.status.SetText(msg.Err.Error())
		return m, nil

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.sess.Board.Dismiss()
		m.preview = nil
		return nil
	case key.Matches(msg, m.keys.ToggleTheme):
		mode, err := m.sess.Prefs.Toggle()
		if err != nil {
			log.LogWithError(err).Warn("display mode not saved")
		}
		m.applyMode(mode)
		return nil
	case key.Matches(msg, m.keys.Add):
		m.sess.Fields.Append()
		m.syncInputs()
		m.focus = common.Focus{Target: common.TargetRow, Row: len(m.nameInputs) - 1, Column: common.ColType}
		m.applyFocus()
		return nil
	case key.Matches(msg, m.keys.Delete):
		if m.focus.Target == common.TargetRow {
			if row, ok := m.focusedRow(); ok {
				row.Delete()
				m.syncInputs()
				m.clampFocus()
			}
		}
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Preview):
		return m.requestPreview()
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return nil
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
		return nil
	case key.Matches(msg, m.keys.CycleLeft, m.keys.CycleRight):
		step := 1
		if key.Matches(msg, m.keys.CycleLeft) {
			step = -1
		}
		if m.cycle(step) {
			return nil
		}
	case msg.Type == tea.KeyEnter:
		if m.focus.Target == common.TargetSubmit {
			return m.submit()
		}
		m.moveFocus(1)
		return nil
	}
	return m.updateInput(msg)
}

// cycle changes the focused selector. It returns false when the focus is on
// a text input, which then handles the key itself.
func (m *Model) cycle(step int) bool {
	switch {
	case m.focus.Target == common.TargetRow && m.focus.Column == common.ColType:
		row, ok := m.focusedRow()
		if !ok {
			return true
		}
		if id, ok := components.NextSelectable(row, step); ok {
			row.SelectType(id)
			m.syncInputs()
		}
		return true
	case m.focus.Target == common.TargetFormat:
		n := len(types.FileFormats())
		m.formatIdx = ((m.formatIdx+step)%n + n) % n
		return true
	}
	return false
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.focus.Target == common.TargetRow && m.focus.Column == common.ColName:
		i := m.focus.Row
		if i < 0 || i >= len(m.nameInputs) {
			return nil
		}
		before := m.nameInputs[i].Value()
		m.nameInputs[i], cmd = m.nameInputs[i].Update(msg)
		if after := m.nameInputs[i].Value(); after != before {
			if row, ok := m.focusedRow(); ok {
				row.SetName(after)
			}
		}
	case m.focus.Target == common.TargetRowCount:
		m.rowCount, cmd = m.rowCount.Update(msg)
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	if m.exporting {
		return nil
	}
	list := m.sess.Fields.Fields()
	if !m.sess.Gate.Enabled(list) {
		m.status.SetText("Every field needs a data type and a name")
		return nil
	}
	count, err := m.count()
	if err != nil {
		m.status.SetText(err.Error())
		return nil
	}
	format := m.Format()

	m.exporting = true
	m.status.SetText(fmt.Sprintf("Generating %d rows as %s", count, format.Label()))
	ctx, gate := m.ctx, m.sess.Gate
	run := func() tea.Msg {
		res, err := gate.Submit(ctx, list, count, format)
		return messages.ExportDoneMsg{Result: res, Err: err}
	}
	return tea.Batch(run, m.status.SetLoading(true))
}

func (m *Model) requestPreview() tea.Cmd {
	list := m.sess.Fields.Fields()
	if !m.sess.Gate.Enabled(list) {
		m.status.SetText("Complete every field to preview")
		return nil
	}
	ctx, client := m.ctx, m.sess.Client
	return func() tea.Msg {
		rows, err := client.Preview(ctx, types.ExportRequest{Fields: list, Count: api.PreviewMaxRows, FileFormat: types.FormatJSON})
		if err != nil {
			return messages.PreviewMsg{Err: err}
		}
		header, cells := components.PreviewColumns(list, rows)
		return messages.PreviewMsg{Header: header, Rows: cells}
	}
}

func (m *Model) count() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(m.rowCount.Value()))
	if err != nil {
		return 0, errors.NewInvalidInputError("row count must be a number", err)
	}
	if err := m.sess.Gate.CheckCount(n); err != nil {
		if limit := m.sess.Gate.MaxRows(); limit > 0 {
			return 0, fmt.Errorf("row count must be between 1 and %d", limit)
		}
		return 0, fmt.Errorf("row count must be at least 1")
	}
	return n, nil
}

func (m *Model) expireNotice() tea.Cmd {
	ttl := m.sess.Board.TTL()
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(t time.Time) tea.Msg { return messages.NoticeExpiredMsg{At: t} })
}

func (m *Model) applyMode(mode types.DisplayMode) {
	m.mode = mode
	m.styles = styles.New(m.sess.Config.Palette(mode))
	m.status.SetStyle(m.styles.Help)
	m.help.Styles.ShortKey = m.styles.Label
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.FullKey = m.styles.Label
	m.help.Styles.FullDesc = m.styles.Help
	m.rowCount.TextStyle = m.styles.Text
	for i := range m.nameInputs {
		m.nameInputs[i].TextStyle = m.styles.Text
	}
}

// syncInputs matches the name inputs to the current field list.
func (m *Model) syncInputs() {
	list := m.sess.Fields.Fields()
	if len(m.nameInputs) > len(list) {
		m.nameInputs = m.nameInputs[:len(list)]
	}
	for len(m.nameInputs) < len(list) {
		in := textinput.New()
		in.Placeholder = "field name"
		in.Width = 24
		in.TextStyle = m.styles.Text
		m.nameInputs = append(m.nameInputs, in)
	}
	for i, f := range list {
		if m.nameInputs[i].Value() != f.Name {
			m.nameInputs[i].SetValue(f.Name)
		}
	}
}

func (m *Model) focusedRow() (editor.Row, bool) {
	rows := m.sess.Rows()
	if m.focus.Target != common.TargetRow || m.focus.Row < 0 || m.focus.Row >= len(rows) {
		return editor.Row{}, false
	}
	return rows[m.focus.Row], true
}

// stops lists every focusable control in tab order.
func (m *Model) stops() []common.Focus {
	stops := make([]common.Focus, 0, 2*len(m.nameInputs)+3)
	for i := range m.nameInputs {
		stops = append(stops,
			common.Focus{Target: common.TargetRow, Row: i, Column: common.ColType},
			common.Focus{Target: common.TargetRow, Row: i, Column: common.ColName})
	}
	return append(stops,
		common.Focus{Target: common.TargetRowCount},
		common.Focus{Target: common.TargetFormat},
		common.Focus{Target: common.TargetSubmit})
}

func (m *Model) moveFocus(step int) {
	stops := m.stops()
	cur := 0
	for i, s := range stops {
		if s == m.focus {
			cur = i
			break
		}
	}
	m.focus = stops[((cur+step)%len(stops)+len(stops))%len(stops)]
	m.applyFocus()
}

func (m *Model) moveRow(step int) {
	if m.focus.Target != common.TargetRow {
		m.moveFocus(step)
		return
	}
	next := m.focus.Row + step
	if next < 0 || next >= len(m.nameInputs) {
		m.moveFocus(step)
		return
	}
	m.focus.Row = next
	m.applyFocus()
}

func (m *Model) clampFocus() {
	if m.focus.Target != common.TargetRow {
		return
	}
	if len(m.nameInputs) == 0 {
		m.focus = common.Focus{Target: common.TargetRowCount}
	} else if m.focus.Row >= len(m.nameInputs) {
		m.focus.Row = len(m.nameInputs) - 1
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for i := range m.nameInputs {
		if m.focus.Target == common.TargetRow && m.focus.Row == i && m.focus.Column == common.ColName {
			m.nameInputs[i].Focus()
		} else {
			m.nameInputs[i].Blur()
		}
	}
	if m.focus.Target == common.TargetRowCount {
		m.rowCount.Focus()
	} else {
		m.rowCount.Blur()
	}
}

// Read-only accessors used by the views.

func (m *Model) Rows() []common.RowView {
	rows := m.sess.Rows()
	out := make([]common.RowView, len(rows))
	for i, r := range rows {
		view := r.Name
		if i < len(m.nameInputs) {
			view = m.nameInputs[i].View()
		}
		out[i] = common.RowView{Row: r, NameView: view}
	}
	return out
}

func (m *Model) Focus() common.Focus { return m.focus }
func (m *Model) RowCountView() string { return m.rowCount.View() }
func (m *Model) Format() types.FileFormat { return types.FileFormats()[m.formatIdx] }
func (m *Model) CanSubmit() bool { return !m.exporting && m.sess.CanSubmit() }
func (m *Model) Exporting() bool { return m.exporting }
func (m *Model) Notice() (types.Notice, bool) { return m.sess.Board.Current() }
func (m *Model) Preview() *common.Preview { return m.preview }
func (m *Model) AllowedLoaded() bool { return m.sess.AllowedLoaded() }
func (m *Model) ShowHelp() bool { return m.showHelp }
func (m *Model) HelpView() string { return m.help.View(m.keys) }
func (m *Model) StatusView() string { return m.status.View() }
func (m *Model) Mode() types.DisplayMode { return m.mode }
func (m *Model) Styles() styles.Styles { return m.styles }
func (m *Model) RowCountValue() string { return m.rowCount.Value() }
func (m *Model) NameInputCount() int { return len(m.nameInputs) }
func (m *Model) Session() *session.Session { return m.sess }
