// Package server exposes blockfall sessions over HTTP.
//
// The process-wide session answers the parameterless operations
// (GET /api/frame, POST /api/tick, /api/left, /api/right, /api/rotate-left,
// /api/rotate-right). Independent sessions live under /api/sessions/{id}.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plus3/blockfall/tetris"
)

// NewRouter configures all routes and returns the handler.
func NewRouter(registry *Registry, glyphs tetris.Glyphs, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	if logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	}

	defaultHandler := NewDefaultHandler(glyphs)
	sessionHandler := NewSessionHandler(registry, glyphs)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// Process-wide session
		r.Get("/frame", defaultHandler.Frame)
		r.Get("/state", defaultHandler.State)
		for _, action := range tetris.Actions() {
			r.Post("/"+action.String(), defaultHandler.Act(action))
		}

		// Independent sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.Count)
			r.Post("/", sessionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.State)
				r.Delete("/", sessionHandler.Delete)
				r.Get("/frame", sessionHandler.Frame)
				r.Post("/{action}", sessionHandler.Act)
			})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondText writes a plain-text frame
func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("Error writing frame: %v", err)
	}
}
