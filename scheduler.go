package bind

import (
	"sync"
)

// Scheduler nominates the execution context slot writes are marshaled onto.
// Streamed values may originate on any goroutine; every write into a target
// slot goes through the directive's scheduler, in the order the stream
// delivered the values.
type Scheduler interface {
	Do(fn func())
}

// Immediate runs work inline on the calling goroutine. It is the default and
// suits hosts whose streams only ever emit on the UI goroutine.
var Immediate Scheduler = immediate{}

type immediate struct{}

func (immediate) Do(fn func()) { fn() }

// Loop is a single-goroutine scheduler: work queued with Do runs on whichever
// goroutine called Run, in queueing order. It is the scheduler to nominate
// when stream producers live on other goroutines.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Do queues fn. After Stop, work is dropped.
func (l *Loop) Do(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run processes queued work until Stop is called. It blocks and is meant to be
// the body of the host's UI goroutine.
func (l *Loop) Run() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.done:
			return
		}
	}
}

func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}
