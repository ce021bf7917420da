package components

import (
	"testing"

	"litedata/internal/catalog"
	"litedata/internal/editor"
	"litedata/internal/tui/styles"
	"litedata/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFieldRow(t *testing.T) {
	st := styles.Default()
	allowed := catalog.NewAllowedSet([]string{"name", "number"})

	row := editor.NewRow(0, "", "", allowed, editor.Callbacks{})
	out := RenderFieldRow(row, "[name]", -1, st)
	assert.Contains(t, out, "Field 1")
	assert.Contains(t, out, TypePlaceholder)
	assert.Contains(t, out, "•")
	assert.NotContains(t, out, "Phone")

	row = editor.NewRow(1, "number", "qty", allowed, editor.Callbacks{})
	out = RenderFieldRow(row, "[qty]", 0, st)
	assert.Contains(t, out, "Field 2")
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, "Phone", "focused type column lists the catalog")
	assert.NotContains(t, out, "•")
}

func TestNextSelectable(t *testing.T) {
	allowed := catalog.NewAllowedSet([]string{"name", "email", "uuid"})

	row := editor.NewRow(0, "", "", allowed, editor.Callbacks{})
	id, ok := NextSelectable(row, 1)
	require.True(t, ok)
	assert.Equal(t, "name", id)

	id, _ = NextSelectable(row, -1)
	assert.Equal(t, "uuid", id)

	row = editor.NewRow(0, "email", "", allowed, editor.Callbacks{})
	id, _ = NextSelectable(row, 1)
	assert.Equal(t, "uuid", id)
	id, _ = NextSelectable(row, -1)
	assert.Equal(t, "name", id)

	row = editor.NewRow(0, "uuid", "", allowed, editor.Callbacks{})
	id, _ = NextSelectable(row, 1)
	assert.Equal(t, "name", id, "wraps around")

	_, ok = NextSelectable(editor.NewRow(0, "", "", catalog.AllowedSet{}, editor.Callbacks{}), 1)
	assert.False(t, ok)
}

func TestPreviewColumns(t *testing.T) {
	list := []types.FieldSpec{{DataType: "name", Name: "who"}, {DataType: "city", Name: "where"}}
	rows := []map[string]interface{}{
		{"where": "Oslo", "who": "Ada", "id": 1},
		{"who": "Grace"},
	}

	header, out := PreviewColumns(list, rows)
	assert.Equal(t, []string{"who", "where", "id"}, header)
	assert.Equal(t, [][]string{{"Ada", "Oslo", "1"}, {"Grace", "", ""}}, out)

	table := RenderPreviewTable(header, out, styles.Default())
	assert.Contains(t, table, "Ada")
	assert.Contains(t, table, "where")
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(styles.Default().Help)
	assert.Empty(t, sb.View())

	sb.SetText("Exporting")
	cmd := sb.SetLoading(true)
	assert.NotNil(t, cmd)
	assert.True(t, sb.Loading())
	assert.Contains(t, sb.View(), "Exporting")

	assert.Nil(t, sb.SetLoading(false))
	assert.Contains(t, sb.View(), "Exporting")
}
