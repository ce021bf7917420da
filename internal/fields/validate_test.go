package fields

import (
	"testing"

	"litedata/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		list []types.FieldSpec
		want bool
	}{
		{"empty list", nil, false},
		{"single empty field", []types.FieldSpec{{}}, false},
		{"missing name", []types.FieldSpec{spec("email", "")}, false},
		{"missing type", []types.FieldSpec{spec("", "contact")}, false},
		{"one complete", []types.FieldSpec{spec("email", "contact")}, true},
		{"one of many incomplete", []types.FieldSpec{spec("email", "contact"), spec("city", "")}, false},
		{"all complete", []types.FieldSpec{spec("email", "contact"), spec("city", "home")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.list))
		})
	}
}

func TestIncomplete(t *testing.T) {
	list := []types.FieldSpec{spec("email", "a"), {}, spec("city", ""), spec("url", "b")}
	assert.Equal(t, []int{1, 2}, Incomplete(list))
	assert.Nil(t, Incomplete([]types.FieldSpec{spec("email", "a")}))
}
