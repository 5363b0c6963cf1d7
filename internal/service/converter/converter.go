package converter

import (
	"github.com/forsitet/developer-maker/api/openapi"
	"github.com/forsitet/developer-maker/internal/domain"
)

func DeveloperSummaryFromDomain(d *domain.Developer) openapi.DeveloperSummary {
	if d == nil {
		return openapi.DeveloperSummary{}
	}

	return openapi.DeveloperSummary{
		MemberId:           d.MemberID,
		DeveloperLevel:     string(d.Level),
		DeveloperSkillType: string(d.SkillType),
	}
}

func DeveloperDetailFromDomain(d *domain.Developer) openapi.DeveloperDetail {
	if d == nil {
		return openapi.DeveloperDetail{}
	}

	return openapi.DeveloperDetail{
		MemberId:           d.MemberID,
		Name:               d.Name,
		Age:                d.Age,
		DeveloperLevel:     string(d.Level),
		DeveloperSkillType: string(d.SkillType),
		ExperienceYears:    d.ExperienceYears,
		StatusCode:         string(d.Status),
	}
}

func DeveloperSummariesFromDomain(devs []domain.Developer) []openapi.DeveloperSummary {
	out := make([]openapi.DeveloperSummary, 0, len(devs))
	for i := range devs {
		out = append(out, DeveloperSummaryFromDomain(&devs[i]))
	}
	return out
}

func RetiredRecordFromDomain(r *domain.RetiredDeveloper) openapi.RetiredRecord {
	if r == nil {
		return openapi.RetiredRecord{}
	}

	return openapi.RetiredRecord{
		Id:        r.ID.String(),
		MemberId:  r.MemberID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func RetiredRecordsFromDomain(records []domain.RetiredDeveloper) []openapi.RetiredRecord {
	out := make([]openapi.RetiredRecord, 0, len(records))
	for i := range records {
		out = append(out, RetiredRecordFromDomain(&records[i]))
	}
	return out
}

// StatsToOpenAPI always reports every known level and status, zero included.
func StatsToOpenAPI(s *domain.DeveloperStats) openapi.DeveloperStats {
	out := openapi.DeveloperStats{
		ByLevel: map[string]int64{
			string(domain.LevelJunior): 0,
			string(domain.LevelMid):    0,
			string(domain.LevelSenior): 0,
		},
		ByStatus: map[string]int64{
			string(domain.StatusEmployed): 0,
			string(domain.StatusRetired):  0,
		},
	}
	if s == nil {
		return out
	}

	for level, n := range s.ByLevel {
		out.ByLevel[string(level)] = n
	}
	for status, n := range s.ByStatus {
		out.ByStatus[string(status)] = n
	}
	return out
}
