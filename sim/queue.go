package sim

import "sync"

// Command mutates the state on the tick goroutine.
type Command func(*State)

// CommandQueue serializes state mutations coming from other goroutines.
// Producers Push, the goroutine owning the State drains once per tick.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
}

// Push appends cmd. Safe for concurrent use.
func (q *CommandQueue) Push(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// PushPointer queues a pointer sample.
func (q *CommandQueue) PushPointer(ev PointerEvent) {
	q.Push(func(s *State) { s.HandlePointer(ev) })
}

// Drain applies every queued command to s in push order and returns how
// many ran.
func (q *CommandQueue) Drain(s *State) int {
	q.mu.Lock()
	cmds := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cmd := range cmds {
		cmd(s)
	}
	return len(cmds)
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
