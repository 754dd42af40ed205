package web

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
)

// Init builds the router. The /api proxy is mounted only when a proxy
// upstream is configured.
func (h *Handler) Init() (*chi.Mux, error) {
	router := chi.NewRouter()

	router.Use(middleware.WithTraceID(h.logger))
	router.Use(middleware.WithLogging)
	router.Use(middleware.Recoverer(h.internalError))

	router.Group(func(r chi.Router) {
		r.Use(middleware.WithGZip)

		r.Get("/", h.index)
		r.Post("/notes", h.createNote)
		r.Get("/notes/{id}", h.showNote)
	})

	if h.proxyUpstream != "" {
		proxy, err := newAPIProxy(h.proxyUpstream)
		if err != nil {
			return nil, err
		}
		router.Mount(config.ProxyPrefix, http.StripPrefix(config.ProxyPrefix, proxy))
	}

	return router, nil
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusInternalServerError)
}
