package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/forsitet/developer-maker/api/openapi"
	"github.com/forsitet/developer-maker/internal/domain"
	"github.com/forsitet/developer-maker/internal/service"
)

const (
	minMemberIDLength = 1
	maxMemberIDLength = 50
	minNameLength     = 3
	maxNameLength     = 20
	minAge            = 18
	maxExperience     = 20

	maxBodyBytes = 1 << 20
)

func invalid(format string, args ...any) error {
	return domain.NewDomainError(domain.ErrorCodeInvalidRequest, fmt.Sprintf(format, args...))
}

// decodeBody reads exactly one JSON value. Oversized bodies come back as
// *http.MaxBytesError for handleError to report as 413.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return fmt.Errorf("decode body: %w", err)
		case errors.Is(err, io.EOF):
			return invalid("request body is empty")
		default:
			return invalid("invalid JSON body")
		}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("decode body: %w", err)
		}
		return invalid("request body must contain a single JSON value")
	}
	return nil
}

func memberIDParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "memberId")
	// chi matches on RawPath only when the escaping is non-canonical;
	// otherwise the segment is already decoded and must be escaped again
	// so the binder unescapes it exactly once.
	if r.URL.RawPath == "" {
		raw = url.PathEscape(raw)
	}

	var memberID string
	err := runtime.BindStyledParameterWithOptions("simple", "memberId", raw, &memberID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", invalid("invalid memberId: %v", err)
	}
	return memberID, nil
}

func checkLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return invalid("%s must be between %d and %d characters", field, minLen, maxLen)
	}
	return nil
}

func checkExperience(years *int) (int, error) {
	if years == nil {
		return 0, invalid("experienceYears is required")
	}
	if *years < 0 || *years > maxExperience {
		return 0, invalid("experienceYears must be between 0 and %d", maxExperience)
	}
	return *years, nil
}

func parseProfile(level, skill string, years *int) (domain.Level, domain.SkillType, int, error) {
	if strings.TrimSpace(level) == "" {
		return "", "", 0, invalid("developerLevel is required")
	}
	lvl, err := domain.ParseLevel(level)
	if err != nil {
		return "", "", 0, err
	}

	if strings.TrimSpace(skill) == "" {
		return "", "", 0, invalid("developerSkillType is required")
	}
	st, err := domain.ParseSkillType(skill)
	if err != nil {
		return "", "", 0, err
	}

	y, err := checkExperience(years)
	if err != nil {
		return "", "", 0, err
	}
	return lvl, st, y, nil
}

func validateCreateRequest(req *openapi.CreateDeveloperRequest) (service.CreateDeveloperInput, error) {
	memberID := strings.TrimSpace(req.MemberId)
	if err := checkLength("memberId", memberID, minMemberIDLength, maxMemberIDLength); err != nil {
		return service.CreateDeveloperInput{}, err
	}

	name := strings.TrimSpace(req.Name)
	if err := checkLength("name", name, minNameLength, maxNameLength); err != nil {
		return service.CreateDeveloperInput{}, err
	}

	if req.Age == nil {
		return service.CreateDeveloperInput{}, invalid("age is required")
	}
	if *req.Age < minAge {
		return service.CreateDeveloperInput{}, invalid("age must be at least %d", minAge)
	}

	level, skill, years, err := parseProfile(req.DeveloperLevel, req.DeveloperSkillType, req.ExperienceYears)
	if err != nil {
		return service.CreateDeveloperInput{}, err
	}

	return service.CreateDeveloperInput{
		MemberID:        memberID,
		Name:            name,
		Age:             *req.Age,
		Level:           level,
		SkillType:       skill,
		ExperienceYears: years,
	}, nil
}

func validateEditRequest(req *openapi.EditDeveloperRequest) (service.EditDeveloperInput, error) {
	level, skill, years, err := parseProfile(req.DeveloperLevel, req.DeveloperSkillType, req.ExperienceYears)
	if err != nil {
		return service.EditDeveloperInput{}, err
	}
	return service.EditDeveloperInput{
		Level:           level,
		SkillType:       skill,
		ExperienceYears: years,
	}, nil
}
