package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarativeTreeWithBindings(t *testing.T) {
	text := NewProperty("Content", KindString, "label", Metadata{Default: String("")})
	name := NewStreamOf(String("ada"))

	label := New("label", "greeting")
	window := New("window", "main",
		WithDataContext(NewObject().
			Set("User", NewObject().
				Set("Name", name))),
		Children(label),
	)
	Modify(label, BindTo(text, "User.Name", ModeOneWay))

	require.Same(t, window, label.Parent)
	assert.True(t, Equal(String("ada"), label.Get(text)))

	name.Next("grace")
	assert.True(t, Equal(String("grace"), label.Get(text)))
}

func TestWithValuePresetsSlot(t *testing.T) {
	text := NewProperty("Content", KindString, "label", Metadata{Default: String("")})
	label := New("label", "l", WithValue(text, String("hi")))
	assert.True(t, Equal(String("hi"), label.Get(text)))
}

func TestBindToOnSelfHeldContext(t *testing.T) {
	prop := NewProperty("Count", KindNumber, "counter", Metadata{Default: Number(0)})
	counter := New("counter", "c",
		WithDataContext(NewObject().Set("Total", NewStreamOf(Number(12)))),
		BindTo(prop, "Total", ModeOneWay),
	)
	assert.True(t, Equal(Number(12), counter.Get(prop)))
}
