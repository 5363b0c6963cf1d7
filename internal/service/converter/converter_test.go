package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/forsitet/developer-maker/internal/domain"
)

func TestDeveloperDetailFromDomain(t *testing.T) {
	dev := &domain.Developer{
		ID:              7,
		MemberID:        "m1",
		Name:            "snow",
		Age:             32,
		Level:           domain.LevelMid,
		SkillType:       domain.SkillTypeFullStack,
		ExperienceYears: 6,
		Status:          domain.StatusRetired,
	}

	got := DeveloperDetailFromDomain(dev)

	assert.Equal(t, "m1", got.MemberId)
	assert.Equal(t, "JUNGNIOR", got.DeveloperLevel)
	assert.Equal(t, "FULL_STACK", got.DeveloperSkillType)
	assert.Equal(t, 6, got.ExperienceYears)
	assert.Equal(t, "RETIRED", got.StatusCode)
}

func TestDeveloperSummariesFromDomain_Empty(t *testing.T) {
	got := DeveloperSummariesFromDomain(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRetiredRecordFromDomain(t *testing.T) {
	id := uuid.MustParse("0b9c5d1e-4a2f-4c7e-9a61-2d3f4e5a6b7c")
	at := time.Date(2025, 4, 1, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	got := RetiredRecordFromDomain(&domain.RetiredDeveloper{ID: id, MemberID: "m1", Name: "snow", CreatedAt: at})

	assert.Equal(t, id.String(), got.Id)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestStatsToOpenAPI_FillsMissingKeys(t *testing.T) {
	got := StatsToOpenAPI(&domain.DeveloperStats{
		ByLevel:  map[domain.Level]int64{domain.LevelSenior: 2},
		ByStatus: map[domain.Status]int64{domain.StatusEmployed: 2},
	})

	assert.Equal(t, map[string]int64{"JUNIOR": 0, "JUNGNIOR": 0, "SENIOR": 2}, got.ByLevel)
	assert.Equal(t, map[string]int64{"EMPLOYED": 2, "RETIRED": 0}, got.ByStatus)
}
