package engine

import "sync"

// CancelFlag is the cooperative cancellation signal shared between a solve
// in progress and its caller: a guarded "solving" boolean that can be read
// and written from different goroutines without a race.
type CancelFlag struct {
	mu      sync.Mutex
	solving bool
}

// NewCancelFlag returns a flag already armed for a solve in progress.
func NewCancelFlag() *CancelFlag {
	return &CancelFlag{solving: true}
}

// Solving reports whether the solve should keep running. Every long-running
// loop (process, process_all, chaining, recursion) polls this at a
// boundary and returns as soon as it can once it reads false.
func (f *CancelFlag) Solving() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.solving
}

// Stop requests cancellation. It is a request, not an interrupt: the solver
// commits to returning a terminal verdict from whatever state the grid
// holds when it next checks the flag.
func (f *CancelFlag) Stop() {
	f.mu.Lock()
	f.solving = false
	f.mu.Unlock()
}

// Start (re)arms the flag, for reuse across successive solves.
func (f *CancelFlag) Start() {
	f.mu.Lock()
	f.solving = true
	f.mu.Unlock()
}
