// Package openapi holds the wire types of the developer API and the OpenAPI
// document describing them.
package openapi

import (
	_ "embed"
	"time"
)

//go:embed openapi.yml
var Spec []byte

type DeveloperSummary struct {
	MemberId           string `json:"memberId"`
	DeveloperLevel     string `json:"developerLevel"`
	DeveloperSkillType string `json:"developerSkillType"`
}

type DeveloperDetail struct {
	MemberId           string `json:"memberId"`
	Name               string `json:"name"`
	Age                int    `json:"age"`
	DeveloperLevel     string `json:"developerLevel"`
	DeveloperSkillType string `json:"developerSkillType"`
	ExperienceYears    int    `json:"experienceYears"`
	StatusCode         string `json:"statusCode"`
}

// Pointer fields distinguish a missing value from zero.
type CreateDeveloperRequest struct {
	MemberId           string `json:"memberId"`
	Name               string `json:"name"`
	Age                *int   `json:"age"`
	DeveloperLevel     string `json:"developerLevel"`
	DeveloperSkillType string `json:"developerSkillType"`
	ExperienceYears    *int   `json:"experienceYears"`
}

type EditDeveloperRequest struct {
	DeveloperLevel     string `json:"developerLevel"`
	DeveloperSkillType string `json:"developerSkillType"`
	ExperienceYears    *int   `json:"experienceYears"`
}

type RetiredRecord struct {
	Id        string    `json:"id"`
	MemberId  string    `json:"memberId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeveloperStats struct {
	ByLevel  map[string]int64 `json:"byLevel"`
	ByStatus map[string]int64 `json:"byStatus"`
}

type ErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}
