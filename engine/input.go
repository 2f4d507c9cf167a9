package engine

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// InputQueue collects actions from input goroutines until the scheduler
// drains them. It is safe for concurrent use.
type InputQueue struct {
	mu      sync.Mutex
	pending []tetris.Action
}

// Push queues an action for the next frame.
func (q *InputQueue) Push(action tetris.Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, action)
}

// Drain removes and returns every queued action in arrival order.
func (q *InputQueue) Drain() []tetris.Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// InputSystem moves queued input actions onto the frame's commands.
type InputSystem struct {
	Queue *InputQueue
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, action := range s.Queue.Drain() {
		frame.Commands.Push(action)
	}
}
