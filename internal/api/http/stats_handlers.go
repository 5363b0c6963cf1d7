package http

import (
	"net/http"

	"github.com/forsitet/developer-maker/internal/service/converter"
)

func (s *Server) HandleStatsDevelopers(w http.ResponseWriter, r *http.Request) {
	stats, err := s.app.Stats.GetDeveloperStats(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.StatsToOpenAPI(stats))
}
