//go:build !nogui

package gui

import (
	"litedata/internal/catalog"
	"litedata/internal/editor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const unavailableSuffix = " (unavailable)"

// rowWidgets are the controls of one editor row. They address the store by
// position and look the row up again on every event.
type rowWidgets struct {
	app   *App
	index int

	title     *widget.Label
	typeSel   *widget.Select
	nameEntry *widget.Entry
	deleteBtn *widget.Button
	container *fyne.Container

	ids map[string]string
}

func newRowWidgets(a *App, index int) *rowWidgets {
	w := &rowWidgets{app: a, index: index, ids: make(map[string]string)}

	w.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	w.typeSel = widget.NewSelect(nil, w.onTypeSelected)
	w.typeSel.PlaceHolder = "Select type"
	w.nameEntry = widget.NewEntry()
	w.nameEntry.SetPlaceHolder("field name")
	w.nameEntry.OnChanged = w.onNameChanged
	w.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), w.onDelete)

	w.container = container.NewBorder(nil, nil, w.title, w.deleteBtn,
		container.NewGridWithColumns(2, w.typeSel, w.nameEntry))
	return w
}

func (w *rowWidgets) current() (editor.Row, bool) {
	rows := w.app.sess.Rows()
	if w.index >= len(rows) {
		return editor.Row{}, false
	}
	return rows[w.index], true
}

// update copies r into the widgets without echoing changes back.
func (w *rowWidgets) update(r editor.Row) {
	w.title.SetText(r.Title())

	opts := r.Options()
	labels := make([]string, len(opts))
	ids := make(map[string]string, len(opts))
	for i, opt := range opts {
		label := opt.Label
		if !opt.Selectable {
			label += unavailableSuffix
		}
		labels[i] = label
		ids[label] = opt.ID
	}
	w.ids = ids
	w.typeSel.Options = labels

	selected := ""
	if r.DataType != "" {
		selected = optionLabel(r, r.DataType)
	}
	if w.typeSel.Selected != selected {
		if selected == "" {
			w.typeSel.ClearSelected()
		} else {
			w.typeSel.SetSelected(selected)
		}
	}
	w.typeSel.Refresh()

	if w.nameEntry.Text != r.Name {
		w.nameEntry.SetText(r.Name)
	}
}

func optionLabel(r editor.Row, id string) string {
	label := catalog.Label(id)
	if !r.Selectable(id) {
		label += unavailableSuffix
	}
	return label
}

func (w *rowWidgets) onTypeSelected(label string) {
	r, ok := w.current()
	if !ok || label == "" {
		return
	}
	id := w.ids[label]
	if id == r.DataType {
		return
	}
	if !r.Selectable(id) {
		w.app.statusLabel.SetText(catalog.Label(id) + " is not offered by the service")
		w.update(r)
		return
	}
	r.SelectType(id)
}

func (w *rowWidgets) onNameChanged(name string) {
	if r, ok := w.current(); ok && r.Name != name {
		r.SetName(name)
	}
}

func (w *rowWidgets) onDelete() {
	if r, ok := w.current(); ok {
		r.Delete()
	}
}
