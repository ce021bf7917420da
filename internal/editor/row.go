// Package editor derives the per-row editing contract from the field list.
//
// A Row is a pure value: it knows its position, the current values and the
// callbacks it reports through. It never holds on to the store, so a row built
// before a deletion is simply discarded and re-derived on the next render.
package editor

import (
	"fmt"

	"litedata/internal/catalog"
	"litedata/internal/fields"
	"litedata/pkg/types"
)

// Callbacks receive edits addressed by the row's current index.
type Callbacks struct {
	OnTypeChange func(value string, index int)
	OnNameChange func(value string, index int)
	OnDelete     func(index int)
}

// Row is one editable line of the form.
type Row struct {
	Index    int
	DataType string
	Name     string

	allowed catalog.AllowedSet
	cb      Callbacks
}

// NewRow builds a row. It has no side effects.
func NewRow(index int, dataType, name string, allowed catalog.AllowedSet, cb Callbacks) Row {
	return Row{
		Index:    index,
		DataType: dataType,
		Name:     name,
		allowed:  allowed,
		cb:       cb,
	}
}

// Title is the 1-based caption used by narrow layouts.
func (r Row) Title() string {
	return fmt.Sprintf("Field %d", r.Index+1)
}

// Options returns the full catalog in order. Entries outside the allowed set
// are marked not selectable but still listed.
func (r Row) Options() []catalog.Option {
	return r.allowed.Options()
}

// Selectable reports whether id is offered by the service.
func (r Row) Selectable(id string) bool {
	return r.allowed.Contains(id)
}

// Spec returns the row's current values.
func (r Row) Spec() types.FieldSpec {
	return types.FieldSpec{DataType: r.DataType, Name: r.Name}
}

// Incomplete reports whether the row still needs input.
func (r Row) Incomplete() bool {
	return !r.Spec().Complete()
}

// SelectType forwards a type choice. Non-selectable identifiers are still
// forwarded; blocking them is up to the front end.
func (r Row) SelectType(value string) {
	if r.cb.OnTypeChange != nil {
		r.cb.OnTypeChange(value, r.Index)
	}
}

// SetName forwards a name edit.
func (r Row) SetName(value string) {
	if r.cb.OnNameChange != nil {
		r.cb.OnNameChange(value, r.Index)
	}
}

// Delete asks for this row to be removed.
func (r Row) Delete() {
	if r.cb.OnDelete != nil {
		r.cb.OnDelete(r.Index)
	}
}

// BindStore returns callbacks that forward every edit to store.
func BindStore(store *fields.Store) Callbacks {
	return Callbacks{
		OnTypeChange: func(value string, index int) { store.UpdateType(index, value) },
		OnNameChange: func(value string, index int) { store.UpdateName(index, value) },
		OnDelete:     store.RemoveAt,
	}
}

// Rows derives one row per field from the store's current snapshot.
func Rows(store *fields.Store, allowed catalog.AllowedSet) []Row {
	return RowsFor(store.Fields(), allowed, BindStore(store))
}

// RowsFor derives rows from an explicit snapshot.
func RowsFor(list []types.FieldSpec, allowed catalog.AllowedSet, cb Callbacks) []Row {
	rows := make([]Row, len(list))
	for i, f := range list {
		rows[i] = NewRow(i, f.DataType, f.Name, allowed, cb)
	}
	return rows
}
