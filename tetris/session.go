package tetris

import (
	"fmt"
	"io"
	"log"
	"slices"
)

// Stats counts what a session has done. They are diagnostics only.
type Stats struct {
	Ticks        uint64
	Falls        uint64
	Locks        uint64
	Spawns       uint64
	LinesCleared uint64
	Rejected     uint64
}

// LockEvent describes a piece that was stamped into the grid.
type LockEvent struct {
	Piece Piece

	// ClearedRows lists the rows found full during the post-lock scan, in scan
	// order. Each was cleared as soon as it was found.
	ClearedRows []int
}

// Session owns one Grid and one active Piece. It is not safe for concurrent
// use; the caller serializes operations.
type Session struct {
	grid   *Grid
	piece  Piece
	random RandomSource
	logger *log.Logger
	onLock func(LockEvent)
	stats  Stats
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	random RandomSource
	logger *log.Logger
	onLock func(LockEvent)
	grid   *Grid
	piece  *Piece
}

// WithRandom sets the source for spawn draws. The default is math/rand/v2.
func WithRandom(r RandomSource) Option {
	return func(o *sessionOptions) { o.random = r }
}

// WithLogger sets the diagnostic sink. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = l }
}

// WithLockObserver registers fn to be called after every lock, once the
// cleared rows are known and before the next piece spawns.
func WithLockObserver(fn func(LockEvent)) Option {
	return func(o *sessionOptions) { o.onLock = fn }
}

// WithGrid starts the session from a copy of g instead of a fresh grid.
func WithGrid(g *Grid) Option {
	return func(o *sessionOptions) { o.grid = g.Clone() }
}

// WithPiece starts the session with p as the active piece instead of a random
// spawn.
func WithPiece(p Piece) Option {
	return func(o *sessionOptions) { o.piece = &p }
}

// NewSession creates a session with a fresh grid and a newly spawned piece.
func NewSession(opts ...Option) *Session {
	o := &sessionOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.random == nil {
		o.random = globalSource{}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		random: o.random,
		logger: o.logger,
		onLock: o.onLock,
	}
	if o.piece != nil {
		s.piece = *o.piece
	} else {
		s.spawn()
	}
	if o.grid != nil {
		s.grid = o.grid
	} else {
		s.grid = NewGrid()
	}
	return s
}

// Piece returns the active piece.
func (s *Session) Piece() Piece {
	return s.piece
}

// Grid returns a copy of the locked playfield, without the active piece.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Composite returns the playfield with the active piece stamped in. The real
// grid is left untouched.
func (s *Session) Composite() *Grid {
	return s.grid.Stamp(s.piece.Matrix(), s.piece.Position)
}

// Render draws the composite view with the default glyphs.
func (s *Session) Render() string {
	return s.RenderWith(DefaultGlyphs)
}

// RenderWith draws the composite view with the given glyphs.
func (s *Session) RenderWith(glyphs Glyphs) string {
	return s.Composite().Render(glyphs)
}

// AtTop reports whether the active piece's top row overlaps the hidden rows.
// Nothing acts on it.
func (s *Session) AtTop() bool {
	return s.grid.IntersectsHiddenRegion(s.piece.Matrix(), s.piece.Position)
}

// Tick advances the game one step. The piece falls one row if it can;
// otherwise it locks in place, every full row it spans is cleared, and a new
// piece spawns.
func (s *Session) Tick() {
	s.stats.Ticks++
	matrix := s.piece.Matrix()
	next := s.piece.Moved(0, 1)
	if s.grid.CanPlace(matrix, next.Position) {
		s.piece = next
		s.stats.Falls++
		return
	}
	s.lock(matrix)
	s.spawn()
}

func (s *Session) lock(matrix Matrix) {
	s.grid = s.grid.Stamp(matrix, s.piece.Position)
	s.stats.Locks++

	var cleared []int
	top := s.piece.Position.Y
	bottom := min(top+MatrixSize, s.grid.Height()-1)
	for row := top; row < bottom; row++ {
		if s.grid.FullLine(row) {
			s.grid.ClearLine(row)
			cleared = append(cleared, row)
		}
	}
	s.stats.LinesCleared += uint64(len(cleared))
	s.logger.Printf("lock %s %s at %s, cleared rows %v", s.piece.Shape, s.piece.Orientation, s.piece.Position, cleared)

	if s.onLock != nil {
		s.onLock(LockEvent{Piece: s.piece, ClearedRows: slices.Clone(cleared)})
	}
}

func (s *Session) spawn() {
	s.piece = SpawnPiece(s.random)
	s.stats.Spawns++
	s.logger.Printf("spawn %s %s", s.piece.Shape, s.piece.Orientation)
}

// MoveLeft shifts the piece one column left unless that would collide.
func (s *Session) MoveLeft() {
	s.try(s.piece.Moved(-1, 0))
}

// MoveRight shifts the piece one column right unless that would collide.
func (s *Session) MoveRight() {
	s.try(s.piece.Moved(1, 0))
}

// RotateLeft rotates the piece in place unless that would collide. There is
// no kick search.
func (s *Session) RotateLeft() {
	s.try(s.piece.RotatedLeft())
}

// RotateRight rotates the piece in place unless that would collide.
func (s *Session) RotateRight() {
	s.try(s.piece.RotatedRight())
}

func (s *Session) try(candidate Piece) bool {
	if !s.grid.CanPlace(candidate.Matrix(), candidate.Position) {
		s.stats.Rejected++
		return false
	}
	s.piece = candidate
	return true
}

// Apply performs the operation named by a.
func (s *Session) Apply(a Action) {
	switch a {
	case ActionTick:
		s.Tick()
	case ActionMoveLeft:
		s.MoveLeft()
	case ActionMoveRight:
		s.MoveRight()
	case ActionRotateLeft:
		s.RotateLeft()
	case ActionRotateRight:
		s.RotateRight()
	default:
		panic(fmt.Sprintf("tetris: unknown action %d", uint8(a)))
	}
}
