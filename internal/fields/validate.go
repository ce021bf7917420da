package fields

import "litedata/pkg/types"

// Valid reports whether list can be submitted: it is non-empty and every
// field has both a data type and a name.
func Valid(list []types.FieldSpec) bool {
	if len(list) == 0 {
		return false
	}
	for _, f := range list {
		if !f.Complete() {
			return false
		}
	}
	return true
}

// Incomplete returns the positions of fields missing a type or a name.
func Incomplete(list []types.FieldSpec) []int {
	var out []int
	for i, f := range list {
		if !f.Complete() {
			out = append(out, i)
		}
	}
	return out
}
