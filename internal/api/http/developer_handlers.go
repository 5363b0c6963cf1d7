package http

import (
	"log/slog"
	"net/http"

	"github.com/forsitet/developer-maker/api/openapi"
	"github.com/forsitet/developer-maker/internal/service/converter"
)

func closeBody(r *http.Request, handler string) {
	if err := r.Body.Close(); err != nil {
		slog.Debug("error closing body", "handler", handler, "error", err)
	}
}

func (s *Server) HandleListDevelopers(w http.ResponseWriter, r *http.Request) {
	devs, err := s.app.Developer.ListEmployedDevelopers(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.DeveloperSummariesFromDomain(devs))
}

func (s *Server) HandleGetDeveloper(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDParam(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	dev, err := s.app.Developer.GetDeveloperDetail(r.Context(), memberID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.DeveloperDetailFromDomain(dev))
}

func (s *Server) HandleCreateDeveloper(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r, "HandleCreateDeveloper")

	var req openapi.CreateDeveloperRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	in, err := validateCreateRequest(&req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	created, err := s.app.Developer.CreateDeveloper(r.Context(), in)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, converter.DeveloperDetailFromDomain(created))
}

func (s *Server) HandleEditDeveloper(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r, "HandleEditDeveloper")

	memberID, err := memberIDParam(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var req openapi.EditDeveloperRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	in, err := validateEditRequest(&req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	updated, err := s.app.Developer.EditDeveloper(r.Context(), memberID, in)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.DeveloperDetailFromDomain(updated))
}

func (s *Server) HandleDeleteDeveloper(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDParam(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	retired, err := s.app.Developer.RetireDeveloper(r.Context(), memberID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.DeveloperDetailFromDomain(retired))
}

func (s *Server) HandleListRetirements(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDParam(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	records, err := s.app.Developer.ListRetirements(r.Context(), memberID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.RetiredRecordsFromDomain(records))
}
