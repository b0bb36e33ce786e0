package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/configs", h.listConfigs)
		r.Get("/configs/{name}", h.getConfig)
		r.Put("/configs/{name}", h.putConfig)
		r.Post("/dispatch", h.dispatch)
		r.Post("/sweep", h.sweep)
		r.Get("/version", h.getServerVersion)
	})

	return router
}
