package components

import (
	"strings"

	"litedata/internal/catalog"
	"litedata/internal/editor"
	"litedata/internal/tui/styles"
)

// TypePlaceholder is shown while a row has no data type.
const TypePlaceholder = "Select type"

// RenderFieldRow draws one editor row. focused is -1 when no column of the row
// has focus, otherwise the focused column (0 type, 1 name).
func RenderFieldRow(row editor.Row, nameView string, focused int, st styles.Styles) string {
	var sb strings.Builder

	sb.WriteString(st.Label.Render(row.Title()))
	sb.WriteString("  ")

	typeText := TypePlaceholder
	if row.DataType != "" {
		typeText = catalog.Label(row.DataType)
	}
	typeText = "‹ " + typeText + " ›"
	switch {
	case focused == 0:
		sb.WriteString(st.Focused.Render(typeText))
	case row.DataType == "":
		sb.WriteString(st.Muted.Render(typeText))
	default:
		sb.WriteString(st.Text.Render(typeText))
	}

	sb.WriteString("  ")
	sb.WriteString(nameView)

	if row.Incomplete() {
		sb.WriteString("  " + st.Error.Render("•"))
	}

	if focused == 0 {
		sb.WriteString("\n" + RenderTypeOptions(row, st))
	}
	return sb.String()
}

// RenderTypeOptions lists the whole catalog. Entries the service does not
// offer are grayed out.
func RenderTypeOptions(row editor.Row, st styles.Styles) string {
	opts := row.Options()
	parts := make([]string, 0, len(opts))
	for _, opt := range opts {
		switch {
		case opt.ID == row.DataType:
			parts = append(parts, st.Success.Render(opt.Label))
		case opt.Selectable:
			parts = append(parts, st.Text.Render(opt.Label))
		default:
			parts = append(parts, st.Disabled.Render(opt.Label))
		}
	}
	return "    " + strings.Join(parts, st.Muted.Render(" · "))
}

// NextSelectable returns the selectable identifier after (or before, when
// step is negative) current in catalog order. ok is false when nothing is
// selectable.
func NextSelectable(row editor.Row, step int) (string, bool) {
	opts := row.Options()
	n := len(opts)
	if n == 0 {
		return "", false
	}
	start := catalog.Index(row.DataType)
	if start < 0 {
		if step > 0 {
			start = -1
		} else {
			start = n
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if opts[idx].Selectable {
			return opts[idx].ID, true
		}
	}
	return "", false
}
