package catalog

import "litedata/pkg/types"

// AllowedSet is the immutable set of type identifiers the remote service
// accepts. The zero value allows nothing.
type AllowedSet struct {
	ids   map[string]struct{}
	order []string
}

// NewAllowedSet builds a set from the identifiers returned by the config
// endpoint. Duplicates collapse; order of first appearance is kept.
func NewAllowedSet(ids []string) AllowedSet {
	s := AllowedSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, dup := s.ids[id]; dup {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s
}

// Contains is an exact, case-sensitive membership test.
func (s AllowedSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of allowed identifiers.
func (s AllowedSet) Len() int {
	return len(s.order)
}

// IDs returns the identifiers in server order.
func (s AllowedSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Option is a catalog entry as rendered by a type selector.
type Option struct {
	types.DataType
	Selectable bool
}

// Options renders the full catalog, graying out entries the set lacks.
func (s AllowedSet) Options() []Option {
	opts := make([]Option, len(dataTypes))
	for i, dt := range dataTypes {
		opts[i] = Option{DataType: dt, Selectable: s.Contains(dt.ID)}
	}
	return opts
}
