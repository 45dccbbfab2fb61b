package router

import (
	"net/http"

	"placid-connector/internal/http-server/handler/execute"
	"placid-connector/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	ExecuteHandler *execute.ExecuteHandler
}

func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				next.ServeHTTP(w, r)
			})
		})

		r.Post("/execute", h.ExecuteHandler.Execute)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/health/upstream", h.ExecuteHandler.CheckUpstream)
	})

	return r
}
