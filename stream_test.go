package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReplaysCurrentOnSubscribe(t *testing.T) {
	s := NewStreamOf(Number(1))
	var got []Value
	cancel := s.Subscribe(func(v Number) { got = append(got, v) })
	defer cancel()

	require.Len(t, got, 1)
	assert.True(t, Equal(Number(1), got[0]))
}

func TestStreamEmptyDeliversOnFirstNext(t *testing.T) {
	s := NewStream[String]()
	var got []Value
	cancel := s.Subscribe(func(v String) { got = append(got, v) })
	defer cancel()

	require.Empty(t, got)
	s.Next("hello")
	require.Len(t, got, 1)
	assert.True(t, Equal(String("hello"), got[0]))
}

func TestStreamSuppressesEqualElements(t *testing.T) {
	s := NewStream[Number]()
	count := 0
	cancel := s.Subscribe(func(Number) { count++ })
	defer cancel()

	s.Next(1)
	s.Next(1)
	s.Next(2)
	s.Next(2)
	s.Next(1)
	assert.Equal(t, 3, count)
}

func TestStreamCancelIsIdempotent(t *testing.T) {
	s := NewStream[Number]()
	count := 0
	cancel := s.Subscribe(func(Number) { count++ })
	other := 0
	cancelOther := s.Subscribe(func(Number) { other++ })
	defer cancelOther()

	s.Next(1)
	cancel()
	cancel()
	s.Next(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, other)
}

func TestStreamCurrent(t *testing.T) {
	s := NewStream[Bool]()
	_, ok := s.Current()
	require.False(t, ok)

	s.Next(true)
	v, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, Bool(true), v)
}

func TestStreamElemKind(t *testing.T) {
	assert.Equal(t, KindNumber, NewStream[Number]().ElemKind())
	assert.Equal(t, KindString, NewStream[String]().ElemKind())
	assert.Equal(t, KindObject, NewStream[Object]().ElemKind())
	assert.Equal(t, KindList, NewStream[List]().ElemKind())
	assert.Equal(t, KindStream, NewStream[Bool]().Kind())
}

func TestStreamSinkFeedIgnoresForeignKind(t *testing.T) {
	s := NewStream[Number]()
	var snk sink = s
	require.True(t, snk.accepts(KindNumber))
	require.False(t, snk.accepts(KindString))

	snk.feed(String("nope"))
	_, ok := s.Current()
	assert.False(t, ok)

	snk.feed(Number(9))
	v, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, Number(9), v)
}

func TestStreamSubscriberMayPushBack(t *testing.T) {
	// A subscriber pushing the value it just received must not deadlock or
	// re-notify (equal-element suppression breaks the cycle).
	s := NewStream[Number]()
	count := 0
	cancel := s.Subscribe(func(v Number) {
		count++
		s.Next(v)
	})
	defer cancel()

	s.Next(5)
	assert.Equal(t, 1, count)
}
