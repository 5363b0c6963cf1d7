package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forsitet/developer-maker/internal/metrics"
)

func NewRouter(server *Server, logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger, m))
	r.Use(middleware.Recoverer)

	r.NotFound(server.NotFound)
	r.MethodNotAllowed(server.MethodNotAllowed)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger", http.StatusTemporaryRedirect)
	})

	r.Get("/healthz", server.HealthCheck)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/developers", server.HandleListDevelopers)
	r.Post("/create-developer", server.HandleCreateDeveloper)

	r.Route("/developer/{memberId}", func(r chi.Router) {
		r.Get("/", server.HandleGetDeveloper)
		r.Put("/", server.HandleEditDeveloper)
		r.Delete("/", server.HandleDeleteDeveloper)
		r.Get("/retirements", server.HandleListRetirements)
	})

	r.Get("/stats/developers", server.HandleStatsDevelopers)

	r.Get("/openapi.yaml", server.ServeOpenAPISpec)
	r.Get("/swagger", server.SwaggerUI)

	return r
}
