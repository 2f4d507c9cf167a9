package engine

import "github.com/plus3/blockfall/tetris"

// Commands buffers session actions and deferred functions issued while
// systems execute. They are applied in order at the end of the frame so that
// every system in a frame observes the same session state.
type Commands struct {
	actions []tetris.Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a session action.
func (c *Commands) Push(action tetris.Action) {
	c.actions = append(c.actions, action)
}

// Defer queues a function to run after all queued actions have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies all queued actions to session, runs the deferred functions,
// and resets the buffer.
func (c *Commands) Flush(session *tetris.Session) {
	for _, action := range c.actions {
		session.Apply(action)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}
