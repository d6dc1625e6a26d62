package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/sessions/{session}", func(r chi.Router) {
		// REST calls are compressed, the stream is not
		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Post("/tubes", h.offerTube)
			r.Get("/tubes", h.listTubes)
			r.Post("/tubes/{tube}/accept", h.acceptTube)
		})
		r.Get("/ws", h.openStream)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
