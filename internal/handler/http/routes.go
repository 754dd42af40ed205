package http

import (
	"github.com/MKhiriev/go-notes/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.WithTraceID(h.logger))
	router.Use(middleware.WithLogging)
	router.Use(middleware.Recoverer(writeInternalError))
	router.Use(middleware.CORS)
	if h.registry != nil {
		router.Use(middleware.WithMetrics(h.registry, "notes_api"))
	}
	router.Use(middleware.WithGZip)

	router.Route("/notes", func(r chi.Router) {
		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Get("/{id}", h.getNote)
	})
	router.Get("/version", h.getServerVersion)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
