package tetris

import "sync"

var (
	defaultMu      sync.Mutex
	defaultOptions []Option
	defaultSession *Session
)

// ConfigureDefault sets the options the process-wide session is created with.
// It must be called before first use; once the session exists it changes
// nothing and returns false.
func ConfigureDefault(opts ...Option) bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession != nil {
		return false
	}
	defaultOptions = opts
	return true
}

// WithDefault runs fn against the process-wide session, creating it on first
// use. Calls are serialized.
func WithDefault(fn func(*Session)) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		defaultSession = NewSession(defaultOptions...)
	}
	fn(defaultSession)
}

// Render draws the process-wide session.
func Render() string {
	var out string
	WithDefault(func(s *Session) { out = s.Render() })
	return out
}

// Tick advances the process-wide session.
func Tick() { WithDefault((*Session).Tick) }

// MoveLeft moves the process-wide session's piece left.
func MoveLeft() { WithDefault((*Session).MoveLeft) }

// MoveRight moves the process-wide session's piece right.
func MoveRight() { WithDefault((*Session).MoveRight) }

// RotateLeft rotates the process-wide session's piece left.
func RotateLeft() { WithDefault((*Session).RotateLeft) }

// RotateRight rotates the process-wide session's piece right.
func RotateRight() { WithDefault((*Session).RotateRight) }
