package server

import (
	"errors"
	"sync"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/tetris"
)

var (
	ErrSessionNotFound = errors.New("server: session not found")
	ErrSessionLimit    = errors.New("server: session limit reached")
)

// SessionId identifies a session held by a Registry. Ids start at 1 and are
// never reused.
type SessionId uint64

// Registry holds independently created sessions. Each session is guarded by
// its own lock, so operations on one session are serialized while different
// sessions proceed in parallel.
type Registry struct {
	mu       sync.Mutex
	next     SessionId
	limit    int
	sessions *intmap.Map[SessionId, *entry]
	factory  func(id SessionId) *tetris.Session
}

type entry struct {
	mu      sync.Mutex
	session *tetris.Session
}

// NewRegistry creates a registry holding at most limit sessions, each built
// by factory.
func NewRegistry(limit int, factory func(id SessionId) *tetris.Session) *Registry {
	return &Registry{
		limit:    limit,
		sessions: intmap.New[SessionId, *entry](64),
		factory:  factory,
	}
}

// Create builds and stores a new session.
func (r *Registry) Create() (SessionId, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions.Len() >= r.limit {
		return 0, ErrSessionLimit
	}

	r.next++
	id := r.next
	r.sessions.Put(id, &entry{session: r.factory(id)})
	return id, nil
}

// Do runs fn with exclusive access to the session id.
func (r *Registry) Do(id SessionId, fn func(*tetris.Session)) error {
	r.mu.Lock()
	e, ok := r.sessions.Get(id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return nil
}

// Delete drops the session id.
func (r *Registry) Delete(id SessionId) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions.Get(id); !ok {
		return ErrSessionNotFound
	}
	r.sessions.Del(id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}
