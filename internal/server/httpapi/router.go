package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handler returns the routed API with its middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(s.accessLog)
	r.Use(chimw.Recoverer)
	if s.corsOrigin != "" {
		r.Use(cors(s.corsOrigin))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", s.handleWelcome)
	r.Post("/login", s.handleLogin)
	r.Get("/users", s.handleListUsers)
	r.Post("/users", s.handleCreateUser)

	return r
}
