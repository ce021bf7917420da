// Package fields owns the ordered list of field specifications that the user
// is editing. Position is the only identity a field has.
package fields

import (
	"sync"

	"litedata/internal/log"
	"litedata/pkg/types"
)

// NamePolicy decides what happens to a field's name when its type changes.
type NamePolicy int

const (
	// NameFollowsType copies the type into the name while the name is empty
	// or still holds the previous type. A name the user typed is kept.
	NameFollowsType NamePolicy = iota
	// NameIndependent never touches the name on a type change.
	NameIndependent
	// NameAlwaysFollows overwrites the name with the type on every change.
	NameAlwaysFollows
)

// ParseNamePolicy maps the config spelling to a policy.
func ParseNamePolicy(s string) (NamePolicy, bool) {
	switch s {
	case "", "follow":
		return NameFollowsType, true
	case "independent":
		return NameIndependent, true
	case "always":
		return NameAlwaysFollows, true
	}
	return NameFollowsType, false
}

// Listener receives the new snapshot after every effective mutation.
type Listener func([]types.FieldSpec)

// Store is the single source of truth for the field list.
type Store struct {
	mu        sync.Mutex
	fields    []types.FieldSpec
	policy    NamePolicy
	listeners map[int]Listener
	nextID    int
}

// Option configures a Store.
type Option func(*Store)

// WithNamePolicy selects how type changes affect names.
func WithNamePolicy(p NamePolicy) Option {
	return func(s *Store) { s.policy = p }
}

// NewStore returns a store holding exactly one empty field.
func NewStore(opts ...Option) *Store {
	s := &Store{
		fields:    initial(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func initial() []types.FieldSpec {
	return []types.FieldSpec{{}}
}

// Fields returns a snapshot of the list. The snapshot never changes.
func (s *Store) Fields() []types.FieldSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.fields)
}

// Len returns the number of fields.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fields)
}

// At returns the field at index.
func (s *Store) At(index int) (types.FieldSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.fields) {
		return types.FieldSpec{}, false
	}
	return s.fields[index], true
}

// Append adds an empty field at the end.
func (s *Store) Append() {
	s.mutate("append", func(cur []types.FieldSpec) ([]types.FieldSpec, bool) {
		next := make([]types.FieldSpec, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, types.FieldSpec{}), true
	})
}

// UpdateType sets the data type at index. Out-of-range indices are ignored.
func (s *Store) UpdateType(index int, value string) {
	s.mutate("update_type", func(cur []types.FieldSpec) ([]types.FieldSpec, bool) {
		if index < 0 || index >= len(cur) {
			return nil, false
		}
		prev := cur[index]
		updated := prev
		updated.DataType = value
		switch s.policy {
		case NameAlwaysFollows:
			updated.Name = value
		case NameFollowsType:
			if prev.Name == "" || prev.Name == prev.DataType {
				updated.Name = value
			}
		}
		if updated == prev {
			return nil, false
		}
		next := clone(cur)
		next[index] = updated
		return next, true
	})
}

// UpdateName sets the name at index. Out-of-range indices are ignored.
func (s *Store) UpdateName(index int, value string) {
	s.mutate("update_name", func(cur []types.FieldSpec) ([]types.FieldSpec, bool) {
		if index < 0 || index >= len(cur) || cur[index].Name == value {
			return nil, false
		}
		next := clone(cur)
		next[index].Name = value
		return next, true
	})
}

// RemoveAt deletes the field at index; later fields shift down by one.
func (s *Store) RemoveAt(index int) {
	s.mutate("remove", func(cur []types.FieldSpec) ([]types.FieldSpec, bool) {
		if index < 0 || index >= len(cur) {
			return nil, false
		}
		next := make([]types.FieldSpec, 0, len(cur)-1)
		next = append(next, cur[:index]...)
		return append(next, cur[index+1:]...), true
	})
}

// Replace swaps in a copy of list.
func (s *Store) Replace(list []types.FieldSpec) {
	s.mutate("replace", func([]types.FieldSpec) ([]types.FieldSpec, bool) {
		return clone(list), true
	})
}

// Reset restores the initial single empty field.
func (s *Store) Reset() {
	s.mutate("reset", func([]types.FieldSpec) ([]types.FieldSpec, bool) {
		return initial(), true
	})
}

// Subscribe registers fn for change notifications. The returned function
// removes it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate installs the slice returned by fn. Listeners run outside the lock so
// they may read the store again.
func (s *Store) mutate(op string, fn func([]types.FieldSpec) ([]types.FieldSpec, bool)) {
	s.mu.Lock()
	next, changed := fn(s.fields)
	if !changed {
		s.mu.Unlock()
		log.Debugf("fields: %s ignored", op)
		return
	}
	s.fields = next
	snapshot := clone(next)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	log.LogWithFields(log.F("op", op), log.F("count", len(snapshot))).Debug("fields changed")
	for _, l := range listeners {
		l(clone(snapshot))
	}
}

func clone(list []types.FieldSpec) []types.FieldSpec {
	out := make([]types.FieldSpec, len(list))
	copy(out, list)
	return out
}
