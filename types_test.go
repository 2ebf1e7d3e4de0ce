package bind

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	s := NewStream[Number]()
	tests := []struct {
		name string
		v, w Value
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, Number(0), false},
		{"bools", Bool(true), Bool(true), true},
		{"numbers", Number(1.5), Number(1.5), true},
		{"numbers differ", Number(1.5), Number(2.5), false},
		{"strings", String("a"), String("a"), true},
		{"kind mismatch", Number(1), String("1"), false},
		{"lists", NewList(Number(1), String("x")), NewList(Number(1), String("x")), true},
		{"lists differ in length", NewList(Number(1)), NewList(Number(1), Number(2)), false},
		{"objects", NewObject().Set("a", Number(1)), NewObject().Set("a", Number(1)), true},
		{"objects differ", NewObject().Set("a", Number(1)), NewObject().Set("a", Number(2)), false},
		{"objects differ in keys", NewObject().Set("a", Number(1)), NewObject().Set("b", Number(1)), false},
		{"nested", NewObject().Set("a", NewList(Bool(false))), NewObject().Set("a", NewList(Bool(false))), true},
		{"same stream", s, s, true},
		{"distinct streams", NewStream[Number](), NewStream[Number](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.v, tt.w), spew.Sdump(tt.v, tt.w))
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want String
	}{
		{"nil", nil, ""},
		{"string passthrough", String("x"), "x"},
		{"bool", Bool(true), "true"},
		{"integral number", Number(3), "3"},
		{"fractional number", Number(1.25), "1.25"},
		{"list", NewList(Number(1), String("a")), "[1, a]"},
		{"object sorted keys", NewObject().Set("b", Number(2)).Set("a", Number(1)), "{a: 1, b: 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.v))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Bool", KindBool.String())
	assert.Equal(t, "Stream", KindStream.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
}
