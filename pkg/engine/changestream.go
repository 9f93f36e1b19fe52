package engine

import (
	"sync"

	"github.com/phung/nurikabe/pkg/model"
)

// CellChange is one state transition applied by alter.
type CellChange struct {
	X, Y     int
	NewState model.State
}

// ChangeStream is an unbounded single-producer single-consumer queue of
// CellChange events. A plain Go channel needs a fixed capacity, and change
// events carry state and must never be dropped, so this uses a growable
// slice behind a mutex and condition variable instead, so the producer
// never blocks.
type ChangeStream struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []CellChange
	closed bool
}

// NewChangeStream returns a ready-to-use stream.
func NewChangeStream() *ChangeStream {
	cs := &ChangeStream{}
	cs.cond = sync.NewCond(&cs.mu)
	return cs
}

// Emit appends a change event. It never blocks and never drops.
func (cs *ChangeStream) Emit(x, y int, s model.State) {
	cs.mu.Lock()
	cs.queue = append(cs.queue, CellChange{X: x, Y: y, NewState: s})
	cs.cond.Signal()
	cs.mu.Unlock()
}

// Recv blocks until a change is available or the stream is closed, in
// which case ok is false once the queue has drained.
func (cs *ChangeStream) Recv() (change CellChange, ok bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for len(cs.queue) == 0 && !cs.closed {
		cs.cond.Wait()
	}
	if len(cs.queue) == 0 {
		return CellChange{}, false
	}
	change = cs.queue[0]
	cs.queue = cs.queue[1:]
	return change, true
}

// Drain returns and clears every event currently queued, without blocking.
func (cs *ChangeStream) Drain() []CellChange {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.queue) == 0 {
		return nil
	}
	out := cs.queue
	cs.queue = nil
	return out
}

// Close signals that no further events will be emitted, waking any
// goroutine blocked in Recv.
func (cs *ChangeStream) Close() {
	cs.mu.Lock()
	cs.closed = true
	cs.cond.Broadcast()
	cs.mu.Unlock()
}
