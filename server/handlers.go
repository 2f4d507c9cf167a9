package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plus3/blockfall/tetris"
)

// StateResponse is the JSON view of a session.
type StateResponse struct {
	Id    SessionId     `json:"id,omitempty"`
	Frame string        `json:"frame"`
	Piece PieceResponse `json:"piece"`
	AtTop bool          `json:"at_top"`
	Stats StatsResponse `json:"stats"`
}

// PieceResponse is the JSON view of the active piece.
type PieceResponse struct {
	Shape       string `json:"shape"`
	Orientation int    `json:"orientation"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

// StatsResponse is the JSON view of the session counters.
type StatsResponse struct {
	Ticks        uint64 `json:"ticks"`
	Falls        uint64 `json:"falls"`
	Locks        uint64 `json:"locks"`
	Spawns       uint64 `json:"spawns"`
	LinesCleared uint64 `json:"lines_cleared"`
	Rejected     uint64 `json:"rejected"`
}

func newStateResponse(s *tetris.Session, glyphs tetris.Glyphs) StateResponse {
	piece := s.Piece()
	stats := s.Stats()
	return StateResponse{
		Frame: s.RenderWith(glyphs),
		Piece: PieceResponse{
			Shape:       piece.Shape.String(),
			Orientation: int(piece.Orientation),
			X:           piece.Position.X,
			Y:           piece.Position.Y,
		},
		AtTop: s.AtTop(),
		Stats: StatsResponse{
			Ticks:        stats.Ticks,
			Falls:        stats.Falls,
			Locks:        stats.Locks,
			Spawns:       stats.Spawns,
			LinesCleared: stats.LinesCleared,
			Rejected:     stats.Rejected,
		},
	}
}

// DefaultHandler serves the process-wide session.
type DefaultHandler struct {
	glyphs tetris.Glyphs
}

// NewDefaultHandler creates a DefaultHandler
func NewDefaultHandler(glyphs tetris.Glyphs) *DefaultHandler {
	return &DefaultHandler{glyphs: glyphs}
}

// Frame handles GET /api/frame
func (h *DefaultHandler) Frame(w http.ResponseWriter, r *http.Request) {
	var frame string
	tetris.WithDefault(func(s *tetris.Session) { frame = s.RenderWith(h.glyphs) })
	respondText(w, http.StatusOK, frame)
}

// State handles GET /api/state
func (h *DefaultHandler) State(w http.ResponseWriter, r *http.Request) {
	var state StateResponse
	tetris.WithDefault(func(s *tetris.Session) { state = newStateResponse(s, h.glyphs) })
	respondJSON(w, http.StatusOK, state)
}

// Act returns the handler for POST /api/{action}
func (h *DefaultHandler) Act(action tetris.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tetris.WithDefault(func(s *tetris.Session) { s.Apply(action) })
		w.WriteHeader(http.StatusNoContent)
	}
}

// SessionHandler serves sessions held in a Registry.
type SessionHandler struct {
	registry *Registry
	glyphs   tetris.Glyphs
}

// NewSessionHandler creates a SessionHandler
func NewSessionHandler(registry *Registry, glyphs tetris.Glyphs) *SessionHandler {
	return &SessionHandler{registry: registry, glyphs: glyphs}
}

// Count handles GET /api/sessions
func (h *SessionHandler) Count(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{"count": h.registry.Len()})
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.registry.Create()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]SessionId{"id": id})
}

// State handles GET /api/sessions/{id}
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionId(w, r)
	if !ok {
		return
	}

	var state StateResponse
	err := h.registry.Do(id, func(s *tetris.Session) { state = newStateResponse(s, h.glyphs) })
	if err != nil {
		respondRegistryError(w, err)
		return
	}
	state.Id = id
	respondJSON(w, http.StatusOK, state)
}

// Frame handles GET /api/sessions/{id}/frame
func (h *SessionHandler) Frame(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionId(w, r)
	if !ok {
		return
	}

	var frame string
	if err := h.registry.Do(id, func(s *tetris.Session) { frame = s.RenderWith(h.glyphs) }); err != nil {
		respondRegistryError(w, err)
		return
	}
	respondText(w, http.StatusOK, frame)
}

// Act handles POST /api/sessions/{id}/{action}
func (h *SessionHandler) Act(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionId(w, r)
	if !ok {
		return
	}

	action, err := tetris.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.registry.Do(id, func(s *tetris.Session) { s.Apply(action) }); err != nil {
		respondRegistryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionId(w, r)
	if !ok {
		return
	}

	if err := h.registry.Delete(id); err != nil {
		respondRegistryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionId parses the {id} URL parameter, answering 400 when it is malformed
func sessionId(w http.ResponseWriter, r *http.Request) (SessionId, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id: "+raw)
		return 0, false
	}
	return SessionId(id), true
}

func respondRegistryError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
