package editor

import (
	"testing"

	"litedata/internal/catalog"
	"litedata/internal/fields"
	"litedata/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	types   []string
	names   []string
	indices []int
	deletes []int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnTypeChange: func(value string, index int) {
			r.types = append(r.types, value)
			r.indices = append(r.indices, index)
		},
		OnNameChange: func(value string, index int) {
			r.names = append(r.names, value)
			r.indices = append(r.indices, index)
		},
		OnDelete: func(index int) { r.deletes = append(r.deletes, index) },
	}
}

func TestOptionsMarkAllowedEntries(t *testing.T) {
	allowed := catalog.NewAllowedSet([]string{"name", "number"})
	row := NewRow(0, "", "", allowed, Callbacks{})

	opts := row.Options()
	require.Len(t, opts, len(catalog.All()))
	assert.Equal(t, "name", opts[0].ID)

	selectable := map[string]bool{}
	for _, o := range opts {
		selectable[o.ID] = o.Selectable
	}
	assert.True(t, selectable["name"])
	assert.True(t, selectable["number"])
	assert.False(t, selectable["phone"])
	assert.False(t, row.Selectable("phone"))
}

func TestEmptyAllowedSetDisablesEverything(t *testing.T) {
	row := NewRow(0, "", "", catalog.AllowedSet{}, Callbacks{})
	for _, o := range row.Options() {
		assert.False(t, o.Selectable, o.ID)
	}
}

func TestCallbacksCarryRowIndex(t *testing.T) {
	rec := &recorder{}
	row := NewRow(2, "city", "home", catalog.NewAllowedSet([]string{"city"}), rec.callbacks())

	row.SelectType("email")
	row.SetName("contact")
	row.Delete()

	assert.Equal(t, []string{"email"}, rec.types)
	assert.Equal(t, []string{"contact"}, rec.names)
	assert.Equal(t, []int{2, 2}, rec.indices)
	assert.Equal(t, []int{2}, rec.deletes)
}

func TestNonSelectableTypeIsStillForwarded(t *testing.T) {
	rec := &recorder{}
	row := NewRow(0, "", "", catalog.NewAllowedSet([]string{"name"}), rec.callbacks())
	row.SelectType("phone")
	assert.Equal(t, []string{"phone"}, rec.types)
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	row := NewRow(0, "", "", catalog.AllowedSet{}, Callbacks{})
	assert.NotPanics(t, func() {
		row.SelectType("name")
		row.SetName("x")
		row.Delete()
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Field 1", NewRow(0, "", "", catalog.AllowedSet{}, Callbacks{}).Title())
	assert.Equal(t, "Field 4", NewRow(3, "", "", catalog.AllowedSet{}, Callbacks{}).Title())
}

func TestRowsFollowStorePositions(t *testing.T) {
	store := fields.NewStore()
	store.Replace([]types.FieldSpec{
		{DataType: "name", Name: "a"},
		{DataType: "phone", Name: "b"},
		{DataType: "city", Name: "c"},
	})
	allowed := catalog.NewAllowedSet([]string{"name", "phone", "city"})

	rows := Rows(store, allowed)
	require.Len(t, rows, 3)
	rows[0].Delete()

	// Rows derived before the delete are stale; re-derive.
	rows = Rows(store, allowed)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[1].Name)

	rows[1].SetName("town")
	rows[1].SelectType("country")

	got, ok := store.At(1)
	require.True(t, ok)
	assert.Equal(t, types.FieldSpec{DataType: "country", Name: "town"}, got)
}

func TestBindStoreDefaultScenario(t *testing.T) {
	store := fields.NewStore()
	rows := Rows(store, catalog.NewAllowedSet([]string{"email"}))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Incomplete())

	rows[0].SelectType("email")

	assert.Equal(t, []types.FieldSpec{{DataType: "email", Name: "email"}}, store.Fields())
	assert.True(t, fields.Valid(store.Fields()))
}
