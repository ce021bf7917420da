package views

import (
	"fmt"
	"strings"

	"litedata/internal/tui/common"
	"litedata/internal/tui/components"
	"litedata/pkg/types"
)

// RenderMainView draws the whole form.
func RenderMainView(m common.ModelReader) string {
	st := m.Styles()
	var sb strings.Builder

	sb.WriteString(renderBanner(m))
	sb.WriteString("\n")

	focus := m.Focus()
	for i, rv := range m.Rows() {
		col := -1
		if focus.Target == common.TargetRow && focus.Row == i {
			col = int(focus.Column)
		}
		sb.WriteString(components.RenderFieldRow(rv.Row, rv.NameView, col, st))
		sb.WriteString("\n")
	}
	if !m.AllowedLoaded() {
		sb.WriteString(st.Muted.Render("Loading data types…") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(renderFooter(m))
	sb.WriteString("\n")

	if n, ok := m.Notice(); ok {
		sb.WriteString("\n" + RenderNotice(n, m) + "\n")
	}
	if p := m.Preview(); p != nil {
		sb.WriteString("\n" + renderPreview(p, m) + "\n")
	}
	if status := m.StatusView(); status != "" {
		sb.WriteString("\n" + status + "\n")
	}

	sb.WriteString("\n" + m.HelpView())
	return st.App.Render(sb.String())
}

func renderFooter(m common.ModelReader) string {
	st := m.Styles()
	focus := m.Focus()

	rows := st.Label.Render("Rows") + " " + m.RowCountView()

	format := "‹ " + m.Format().Label() + " ›"
	if focus.Target == common.TargetFormat {
		format = st.Focused.Render(format)
	} else {
		format = st.Text.Render(format)
	}
	format = st.Label.Render("Format") + " " + format

	label := "Generate"
	if m.Exporting() {
		label = "Generating…"
	}
	button := st.ButtonDisabled.Render(label)
	if m.CanSubmit() {
		button = st.Button.Render(label)
	}
	if focus.Target == common.TargetSubmit {
		button = "▸ " + button
	}

	return rows + "   " + format + "   " + button
}

// RenderNotice draws a success or error notice.
func RenderNotice(n types.Notice, m common.ModelReader) string {
	st := m.Styles()
	msg := st.Success.Render(n.Message)
	if n.Level == types.NoticeError {
		msg = st.Error.Render(n.Message)
	}
	if n.Detail != "" {
		msg += "\n" + st.Muted.Render(n.Detail)
	}
	return st.Notice.Render(msg)
}

func renderPreview(p *common.Preview, m common.ModelReader) string {
	st := m.Styles()
	if p.Err != nil {
		return st.Error.Render(fmt.Sprintf("Preview failed: %v", p.Err))
	}
	if len(p.Rows) == 0 {
		return st.Muted.Render("Preview returned no rows")
	}
	return st.Label.Render("Preview") + "\n" + components.RenderPreviewTable(p.Header, p.Rows, st)
}

func renderBanner(m common.ModelReader) string {
	st := m.Styles()
	mode := "☀ light"
	if m.Mode() == types.Dark {
		mode = "☾ dark"
	}
	return st.Title.Render("Lite Data") + "  " + st.Muted.Render("fake data generator · "+mode)
}
