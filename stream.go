package bind

import (
	"sync"
)

// Elem constrains stream element types to the closed set of value categories.
type Elem interface {
	Bool | Number | String | Object | List
	Value
}

// Stream is an observable, observer-capable value holding the latest element
// pushed into it. A subscriber receives the current element immediately (when
// one exists) and every subsequent distinct element. Pushing an element equal
// to the current one is a no-op, which is what keeps a two-directional link
// from echoing a mutation back to its origin.
//
// A Stream is itself a Value, so it can sit as a member of a context Object
// and be the endpoint a path resolves to.
type Stream[T Elem] struct {
	mu   sync.Mutex
	has  bool
	cur  T
	subs []*streamSub[T]
}

type streamSub[T Elem] struct {
	fn func(T)
}

func NewStream[T Elem]() *Stream[T] {
	return &Stream[T]{}
}

// NewStreamOf returns a stream already holding v.
func NewStreamOf[T Elem](v T) *Stream[T] {
	s := &Stream[T]{}
	s.has = true
	s.cur = v
	return s
}

func (s *Stream[T]) discriminant() discriminant { return "reactivebind" }
func (s *Stream[T]) Kind() Kind                 { return KindStream }

// ElemKind reports the category of the elements this stream carries.
func (s *Stream[T]) ElemKind() Kind {
	var zero T
	return zero.Kind()
}

// Next pushes a new element. Elements may be pushed from any goroutine.
// An element equal to the current one is dropped without notification.
func (s *Stream[T]) Next(v T) {
	s.mu.Lock()
	if s.has && Equal(s.cur, v) {
		s.mu.Unlock()
		return
	}
	s.has = true
	s.cur = v
	subs := make([]*streamSub[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may push back into the stream.
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Current returns the latest element, if any was ever pushed.
func (s *Stream[T]) Current() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur, s.has
}

// Subscribe registers fn and replays the current element synchronously when
// one exists. The returned cancel function is idempotent.
func (s *Stream[T]) Subscribe(fn func(T)) (cancel func()) {
	sub := &streamSub[T]{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	cur, has := s.cur, s.has
	s.mu.Unlock()

	if has {
		fn(cur)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, c := range s.subs {
				if c == sub {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// source is the observable capability a bound endpoint exposes for the listen
// direction. Erased over the element type: dispatch to the typed stream happens
// here, once, instead of by runtime type lookup at every delivery.
type source interface {
	Value
	elemKind() Kind
	watch(fn func(Value)) (cancel func())
}

// sink is the observer capability a bound endpoint exposes for the emit
// direction.
type sink interface {
	accepts(k Kind) bool
	feed(v Value)
}

func (s *Stream[T]) elemKind() Kind { return s.ElemKind() }

func (s *Stream[T]) watch(fn func(Value)) (cancel func()) {
	return s.Subscribe(func(v T) {
		fn(v)
	})
}

func (s *Stream[T]) accepts(k Kind) bool { return k == s.ElemKind() }

func (s *Stream[T]) feed(v Value) {
	t, ok := v.(T)
	if !ok {
		return
	}
	s.Next(t)
}
