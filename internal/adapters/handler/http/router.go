package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHandler wires the webhook and operator routes. verify is the
// platform signature middleware; it guards only the webhook since
// operator routes are not signed by the platform.
func NewHandler(interactionHandler *InteractionHandler, pollHandler *PollHandler, verify func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/interactions", func(r chi.Router) {
		r.Use(verify)
		r.Post("/", interactionHandler.Handle)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/{id}", pollHandler.GetPoll)
		})
	})

	return r
}
