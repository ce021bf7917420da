// Package catalog holds the fixed list of data types the client can offer and
// the set of types the remote service currently allows.
package catalog

import (
	"sort"
	"strings"

	"litedata/pkg/types"

	"github.com/agnivade/levenshtein"
	"github.com/gobwas/glob"
)

var dataTypes = []types.DataType{
	{ID: "name", Label: "Name"},
	{ID: "phone", Label: "Phone"},
	{ID: "number", Label: "Number"},
	{ID: "boolean", Label: "Boolean"},
	{ID: "date", Label: "Date"},
	{ID: "email", Label: "Email"},
	{ID: "time", Label: "Time"},
	{ID: "address", Label: "Address"},
	{ID: "city", Label: "City"},
	{ID: "country", Label: "Country"},
	{ID: "zipCode", Label: "Zip Code"},
	{ID: "company", Label: "Company"},
	{ID: "jobTitle", Label: "Job Title"},
	{ID: "color", Label: "Color"},
	{ID: "uuid", Label: "UUID"},
	{ID: "url", Label: "URL"},
	{ID: "ipAddress", Label: "IP Address"},
	{ID: "macAddress", Label: "MAC Address"},
}

// All returns the catalog in display order. The slice is a copy.
func All() []types.DataType {
	out := make([]types.DataType, len(dataTypes))
	copy(out, dataTypes)
	return out
}

// Lookup finds a catalog entry by its exact identifier.
func Lookup(id string) (types.DataType, bool) {
	for _, dt := range dataTypes {
		if dt.ID == id {
			return dt, true
		}
	}
	return types.DataType{}, false
}

// Label returns the display label for id, or id itself when unknown.
func Label(id string) string {
	if dt, ok := Lookup(id); ok {
		return dt.Label
	}
	return id
}

// Index returns the catalog position of id, or -1.
func Index(id string) int {
	for i, dt := range dataTypes {
		if dt.ID == id {
			return i
		}
	}
	return -1
}

// Match returns the catalog entries whose identifier or label matches the
// glob pattern. Matching is case-insensitive.
func Match(pattern string) ([]types.DataType, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, err
	}
	var out []types.DataType
	for _, dt := range dataTypes {
		if g.Match(strings.ToLower(dt.ID)) || g.Match(strings.ToLower(dt.Label)) {
			out = append(out, dt)
		}
	}
	return out, nil
}

// Suggest returns the catalog identifiers closest to an unknown id, nearest
// first. Only candidates within a third of the input length are returned.
func Suggest(id string) []string {
	limit := len(id)/3 + 1
	type candidate struct {
		id   string
		dist int
	}
	var found []candidate
	for _, dt := range dataTypes {
		d := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(dt.ID))
		if d <= limit {
			found = append(found, candidate{id: dt.ID, dist: d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.id
	}
	return out
}
