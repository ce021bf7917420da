package common

import (
	"litedata/internal/editor"
	"litedata/internal/tui/styles"
	"litedata/pkg/types"
)

// Target is the part of the form that has keyboard focus.
type Target int

const (
	TargetRow Target = iota
	TargetRowCount
	TargetFormat
	TargetSubmit
)

// Column selects the control inside a row.
type Column int

const (
	ColType Column = iota
	ColName
)

// Focus locates the focused control.
type Focus struct {
	Target Target
	Row    int
	Column Column
}

// RowView pairs a derived row with its rendered name input.
type RowView struct {
	Row      editor.Row
	NameView string
}

// Preview holds a few generated rows, columns in field order.
type Preview struct {
	Header []string
	Rows   [][]string
	Err    error
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Rows() []RowView
	Focus() Focus
	RowCountView() string
	Format() types.FileFormat
	CanSubmit() bool
	Exporting() bool
	Notice() (types.Notice, bool)
	Preview() *Preview
	AllowedLoaded() bool
	ShowHelp() bool
	HelpView() string
	StatusView() string
	Mode() types.DisplayMode
	Styles() styles.Styles
}
