package views

import (
	"errors"
	"testing"

	"litedata/internal/catalog"
	"litedata/internal/editor"
	"litedata/internal/tui/common"
	"litedata/internal/tui/styles"
	"litedata/pkg/testutils"
	"litedata/pkg/types"

	"github.com/stretchr/testify/assert"
)

// Mock model for testing
type mockModel struct {
	rows      []types.FieldSpec
	allowed   catalog.AllowedSet
	focus     common.Focus
	format    types.FileFormat
	canSubmit bool
	exporting bool
	notice    *types.Notice
	preview   *common.Preview
	loaded    bool
	mode      types.DisplayMode
}

func (m *mockModel) Rows() []common.RowView {
	out := make([]common.RowView, len(m.rows))
	for i, f := range m.rows {
		out[i] = common.RowView{
			Row:      editor.NewRow(i, f.DataType, f.Name, m.allowed, editor.Callbacks{}),
			NameView: "[" + f.Name + "]",
		}
	}
	return out
}
func (m *mockModel) Focus() common.Focus      { return m.focus }
func (m *mockModel) RowCountView() string     { return "10" }
func (m *mockModel) Format() types.FileFormat { return m.format }
func (m *mockModel) CanSubmit() bool          { return m.canSubmit }
func (m *mockModel) Exporting() bool          { return m.exporting }
func (m *mockModel) Notice() (types.Notice, bool) {
	if m.notice == nil {
		return types.Notice{}, false
	}
	return *m.notice, true
}
func (m *mockModel) Preview() *common.Preview { return m.preview }
func (m *mockModel) AllowedLoaded() bool      { return m.loaded }
func (m *mockModel) ShowHelp() bool           { return false }
func (m *mockModel) HelpView() string         { return "ctrl+c quit" }
func (m *mockModel) StatusView() string       { return "" }
func (m *mockModel) Mode() types.DisplayMode  { return m.mode }
func (m *mockModel) Styles() styles.Styles    { return styles.Default() }

func TestRenderMainView(t *testing.T) {
	tests := []struct {
		name     string
		model    *mockModel
		contains []string
		excludes []string
	}{
		{
			name: "initial form",
			model: &mockModel{
				rows:   []types.FieldSpec{{}},
				format: types.FormatCSV,
				mode:   types.Light,
			},
			contains: []string{"Lite Data", "Field 1", "Select type", "Loading data types", "CSV", "Generate", "light"},
			excludes: []string{"Preview"},
		},
		{
			name: "two rows with type options",
			model: &mockModel{
				rows:      []types.FieldSpec{{DataType: "email", Name: "contact"}, {DataType: "city", Name: "home"}},
				allowed:   catalog.NewAllowedSet([]string{"email", "city"}),
				focus:     common.Focus{Target: common.TargetRow, Row: 1, Column: common.ColType},
				format:    types.FormatXLSX,
				canSubmit: true,
				loaded:    true,
				mode:      types.Dark,
			},
			contains: []string{"Field 2", "[contact]", "City", "MAC Address", "XLS/Excel", "dark"},
			excludes: []string{"Loading data types", "Select type"},
		},
		{
			name: "exporting",
			model: &mockModel{
				rows:      []types.FieldSpec{{DataType: "email", Name: "contact"}},
				format:    types.FormatJSON,
				exporting: true,
				loaded:    true,
			},
			contains: []string{"Generating…"},
		},
		{
			name: "error notice",
			model: &mockModel{
				rows:   []types.FieldSpec{{DataType: "email", Name: "contact"}},
				format: types.FormatCSV,
				notice: &types.Notice{Level: types.NoticeError, Message: "Error generating data. Please try again.", Detail: "status 500"},
				loaded: true,
			},
			contains: []string{"Error generating data. Please try again.", "status 500"},
		},
		{
			name: "preview table",
			model: &mockModel{
				rows:    []types.FieldSpec{{DataType: "name", Name: "who"}},
				format:  types.FormatCSV,
				preview: &common.Preview{Header: []string{"who"}, Rows: [][]string{{"Ada"}}},
				loaded:  true,
			},
			contains: []string{"Preview", "who", "Ada"},
		},
		{
			name: "preview error",
			model: &mockModel{
				rows:    []types.FieldSpec{{DataType: "name", Name: "who"}},
				format:  types.FormatCSV,
				preview: &common.Preview{Err: errors.New("boom")},
				loaded:  true,
			},
			contains: []string{"Preview failed: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model))
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}
