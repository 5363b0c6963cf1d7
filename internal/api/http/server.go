package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/forsitet/developer-maker/api/openapi"
	"github.com/forsitet/developer-maker/internal/domain"
	"github.com/forsitet/developer-maker/internal/service"
)

type Server struct {
	app    *service.App
	logger *slog.Logger
}

func NewServer(app *service.App, logger *slog.Logger) *Server {
	return &Server{
		app:    app,
		logger: logger,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code domain.ErrorCode, message string) {
	if message == "" {
		message = code.DefaultMessage()
	}
	s.writeJSON(w, status, openapi.ErrorResponse{
		ErrorCode:    string(code),
		ErrorMessage: message,
	})
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrorCodeInvalidRequest, domain.ErrorCodeInvalidExperienceRange:
		return http.StatusBadRequest
	case domain.ErrorCodeDuplicateMemberID:
		return http.StatusConflict
	case domain.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes domain errors with their own code and message. Anything
// else is logged and reported as a generic internal error.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, http.StatusRequestEntityTooLarge, domain.ErrorCodeInvalidRequest,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		status := statusForCode(de.Code)
		if status == http.StatusInternalServerError {
			s.logger.Error("internal domain error", "error", err, "path", r.URL.Path)
			s.writeError(w, status, domain.ErrorCodeInternal, "")
			return
		}
		s.writeError(w, status, de.Code, de.Message)
		return
	}

	s.logger.Error("unexpected error", "error", err, "method", r.Method, "path", r.URL.Path)
	s.writeError(w, http.StatusInternalServerError, domain.ErrorCodeInternal, "")
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, domain.ErrorCodeNotFound, "resource not found")
}

func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, domain.ErrorCodeInvalidRequest, "method not allowed")
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *Server) ServeOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(openapi.Spec); err != nil {
		s.logger.Error("failed to write openapi spec", "error", err)
	}
}

func (s *Server) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	const html = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Swagger UI - Developer Maker</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-standalone-preset.js"></script>
    <script>
      window.onload = function() {
        window.ui = SwaggerUIBundle({
          url: '/openapi.yaml',
          dom_id: '#swagger-ui',
          presets: [
            SwaggerUIBundle.presets.apis,
            SwaggerUIStandalonePreset
          ],
          layout: 'StandaloneLayout'
        });
      };
    </script>
  </body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		s.logger.Error("failed to write swagger ui html", "error", err)
	}
}
