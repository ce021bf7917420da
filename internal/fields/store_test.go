package fields

import (
	"fmt"
	"testing"

	"litedata/pkg/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(dataType, name string) types.FieldSpec {
	return types.FieldSpec{DataType: dataType, Name: name}
}

func TestNewStoreHoldsOneEmptyField(t *testing.T) {
	s := NewStore()
	assert.Equal(t, []types.FieldSpec{{}}, s.Fields())
	assert.False(t, Valid(s.Fields()))
}

func TestAppend(t *testing.T) {
	s := NewStore()
	s.Replace([]types.FieldSpec{spec("name", "full"), spec("email", "mail")})

	before := s.Len()
	s.Append()

	got := s.Fields()
	require.Len(t, got, before+1)
	assert.Equal(t, types.FieldSpec{}, got[len(got)-1])
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	base := []types.FieldSpec{
		spec("name", "a"), spec("phone", "b"), spec("city", "c"), spec("uuid", "d"),
	}
	for i := range base {
		t.Run(fmt.Sprintf("index_%d", i), func(t *testing.T) {
			s := NewStore()
			s.Replace(base)
			s.RemoveAt(i)

			want := append(append([]types.FieldSpec{}, base[:i]...), base[i+1:]...)
			if diff := cmp.Diff(want, s.Fields()); diff != "" {
				t.Fatalf("RemoveAt(%d) mismatch (-want +got):\n%s", i, diff)
			}
		})
	}
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	s := NewStore()
	s.Replace([]types.FieldSpec{spec("name", "a")})

	calls := 0
	cancel := s.Subscribe(func([]types.FieldSpec) { calls++ })
	defer cancel()

	for _, idx := range []int{-1, 1, 99} {
		s.RemoveAt(idx)
		s.UpdateType(idx, "email")
		s.UpdateName(idx, "x")
	}

	assert.Equal(t, []types.FieldSpec{spec("name", "a")}, s.Fields())
	assert.Zero(t, calls, "no-op mutations must not notify")
}

func TestUpdateTypeFillsEmptyName(t *testing.T) {
	s := NewStore()
	assert.False(t, Valid(s.Fields()))

	s.UpdateType(0, "email")

	assert.Equal(t, []types.FieldSpec{spec("email", "email")}, s.Fields())
	assert.True(t, Valid(s.Fields()))
}

func TestUpdateTypeNamePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy NamePolicy
		start  types.FieldSpec
		want   types.FieldSpec
	}{
		{"follow keeps typed name", NameFollowsType, spec("name", "customer"), spec("email", "customer")},
		{"follow replaces auto name", NameFollowsType, spec("name", "name"), spec("email", "email")},
		{"follow fills empty name", NameFollowsType, spec("", ""), spec("email", "email")},
		{"independent leaves empty name", NameIndependent, spec("", ""), spec("email", "")},
		{"independent keeps auto name", NameIndependent, spec("name", "name"), spec("email", "name")},
		{"always overwrites", NameAlwaysFollows, spec("name", "customer"), spec("email", "email")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(WithNamePolicy(tt.policy))
			s.Replace([]types.FieldSpec{tt.start})
			s.UpdateType(0, "email")
			got, ok := s.At(0)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateName(t *testing.T) {
	s := NewStore()
	s.UpdateName(0, "first")
	got, _ := s.At(0)
	assert.Equal(t, spec("", "first"), got)
	assert.False(t, Valid(s.Fields()))
}

func TestSnapshotsAreNotMutated(t *testing.T) {
	s := NewStore()
	before := s.Fields()

	s.UpdateType(0, "city")
	s.Append()
	s.UpdateName(1, "second")

	assert.Equal(t, []types.FieldSpec{{}}, before)

	// Mutating a snapshot does not leak into the store.
	snap := s.Fields()
	snap[0].Name = "hacked"
	got, _ := s.At(0)
	assert.Equal(t, "city", got.Name)
}

func TestReplaceCopiesInput(t *testing.T) {
	in := []types.FieldSpec{spec("url", "site")}
	s := NewStore()
	s.Replace(in)
	in[0].Name = "changed"

	got, _ := s.At(0)
	assert.Equal(t, "site", got.Name)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Replace([]types.FieldSpec{spec("url", "a"), spec("url", "b")})
	s.Reset()
	assert.Equal(t, []types.FieldSpec{{}}, s.Fields())
}

func TestSubscribe(t *testing.T) {
	s := NewStore()

	var seen [][]types.FieldSpec
	cancel := s.Subscribe(func(list []types.FieldSpec) {
		seen = append(seen, list)
		// Listeners may read the store without deadlocking.
		assert.Equal(t, len(list), s.Len())
	})

	s.Append()
	s.UpdateName(1, "x")
	s.UpdateName(1, "x") // unchanged, no notification
	cancel()
	s.Append()

	require.Len(t, seen, 2)
	assert.Len(t, seen[0], 2)
	assert.Equal(t, "x", seen[1][1].Name)
}

func TestDeleteThenEditUsesCurrentPositions(t *testing.T) {
	s := NewStore()
	s.Replace([]types.FieldSpec{spec("name", "a"), spec("phone", "b"), spec("city", "c")})

	s.RemoveAt(0)
	// "c" now lives at index 1.
	s.UpdateName(1, "town")

	want := []types.FieldSpec{spec("phone", "b"), spec("city", "town")}
	if diff := cmp.Diff(want, s.Fields()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNamePolicy(t *testing.T) {
	p, ok := ParseNamePolicy("independent")
	assert.True(t, ok)
	assert.Equal(t, NameIndependent, p)

	p, ok = ParseNamePolicy("")
	assert.True(t, ok)
	assert.Equal(t, NameFollowsType, p)

	_, ok = ParseNamePolicy("sometimes")
	assert.False(t, ok)
}
