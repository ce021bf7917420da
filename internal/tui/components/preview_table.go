package components

import (
	"fmt"
	"sort"

	"litedata/internal/tui/styles"
	"litedata/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PreviewColumns orders preview columns by field position. Keys the fields do
// not name are appended in sorted order.
func PreviewColumns(list []types.FieldSpec, rows []map[string]interface{}) ([]string, [][]string) {
	seen := make(map[string]bool)
	var header []string
	for _, f := range list {
		if f.Name != "" && !seen[f.Name] {
			seen[f.Name] = true
			header = append(header, f.Name)
		}
	}
	var extra []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	header = append(header, extra...)

	out := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, len(header))
		for j, col := range header {
			if v, ok := r[col]; ok && v != nil {
				line[j] = fmt.Sprint(v)
			}
		}
		out[i] = line
	}
	return header, out
}

// RenderPreviewTable draws preview rows as a bordered table.
func RenderPreviewTable(header []string, rows [][]string, st styles.Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(st.Border)).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.TableHeader
			}
			return st.TableCell
		})
	return t.String()
}
