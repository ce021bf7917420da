package catalog

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestCatalogOrder(t *testing.T) {
	all := All()
	assert.Equal(t, 18, len(all))
	assert.Equal(t, "name", all[0].ID)
	assert.Equal(t, "macAddress", all[len(all)-1].ID)

	// Callers cannot mutate the package copy.
	all[0].ID = "changed"
	assert.Equal(t, "name", All()[0].ID)
}

func TestLookupAndLabel(t *testing.T) {
	dt, ok := Lookup("zipCode")
	assert.True(t, ok)
	assert.Equal(t, "Zip Code", dt.Label)

	_, ok = Lookup("zipcode")
	assert.False(t, ok, "identifiers are case-sensitive")

	assert.Equal(t, "IP Address", Label("ipAddress"))
	assert.Equal(t, "auto_increment", Label("auto_increment"))
	assert.Equal(t, 5, Index("email"))
	assert.Equal(t, -1, Index("nope"))
}

func TestAllowedSetOptions(t *testing.T) {
	set := NewAllowedSet([]string{"name", "number", "name"})
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"name", "number"}, set.IDs())

	byID := map[string]bool{}
	for _, opt := range set.Options() {
		byID[opt.ID] = opt.Selectable
	}
	assert.True(t, byID["name"])
	assert.True(t, byID["number"])
	assert.False(t, byID["phone"])
	assert.Equal(t, 18, len(byID))
}

func TestAllowedSetIsCaseSensitive(t *testing.T) {
	set := NewAllowedSet([]string{"Name"})
	assert.False(t, set.Contains("name"))
}

func TestEmptyAllowedSet(t *testing.T) {
	var set AllowedSet
	for _, opt := range set.Options() {
		assert.False(t, opt.Selectable, opt.ID)
	}
	assert.False(t, set.Contains("name"))
}

func TestMatch(t *testing.T) {
	got, err := Match("*address")
	assert.NoError(t, err)
	ids := make([]string, len(got))
	for i, dt := range got {
		ids[i] = dt.ID
	}
	assert.Equal(t, []string{"address", "ipAddress", "macAddress"}, ids)

	got, err = Match("job*")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))

	_, err = Match("[")
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "email", Suggest("emial")[0])
	assert.Equal(t, "zipCode", Suggest("zipcode")[0])
	assert.Equal(t, 0, len(Suggest("completely-unrelated")))
}
