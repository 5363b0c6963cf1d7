package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelJunior Level = "JUNIOR"
	// LevelMid keeps the wire name used by existing clients.
	LevelMid    Level = "JUNGNIOR"
	LevelSenior Level = "SENIOR"
)

func ParseLevel(raw string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(LevelJunior):
		return LevelJunior, nil
	case string(LevelMid), "MID":
		return LevelMid, nil
	case string(LevelSenior):
		return LevelSenior, nil
	}
	return "", NewDomainError(ErrorCodeInvalidRequest, "unknown developer level: "+raw)
}

type SkillType string

const (
	SkillTypeBackEnd   SkillType = "BACK_END"
	SkillTypeFrontEnd  SkillType = "FRONT_END"
	SkillTypeFullStack SkillType = "FULL_STACK"
)

func ParseSkillType(raw string) (SkillType, error) {
	switch st := SkillType(strings.ToUpper(strings.TrimSpace(raw))); st {
	case SkillTypeBackEnd, SkillTypeFrontEnd, SkillTypeFullStack:
		return st, nil
	}
	return "", NewDomainError(ErrorCodeInvalidRequest, "unknown developer skill type: "+raw)
}

type Status string

const (
	StatusEmployed Status = "EMPLOYED"
	StatusRetired  Status = "RETIRED"
)

// Developer is treated as a value: updates go through WithProfile and Retire,
// which return modified copies.
type Developer struct {
	ID              int64
	MemberID        string
	Name            string
	Age             int
	Level           Level
	SkillType       SkillType
	ExperienceYears int
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewDeveloper(memberID, name string, age int, level Level, skill SkillType, years int) (Developer, error) {
	if err := ValidateExperienceYears(level, years); err != nil {
		return Developer{}, err
	}
	return Developer{
		MemberID:        memberID,
		Name:            name,
		Age:             age,
		Level:           level,
		SkillType:       skill,
		ExperienceYears: years,
		Status:          StatusEmployed,
	}, nil
}

func (d Developer) WithProfile(level Level, skill SkillType, years int) (Developer, error) {
	if err := ValidateExperienceYears(level, years); err != nil {
		return Developer{}, err
	}
	d.Level = level
	d.SkillType = skill
	d.ExperienceYears = years
	return d, nil
}

func (d Developer) Retire() Developer {
	d.Status = StatusRetired
	return d
}

func (d Developer) IsRetired() bool {
	return d.Status == StatusRetired
}

// RetiredDeveloper is an append-only audit entry written on retirement.
type RetiredDeveloper struct {
	ID        uuid.UUID
	MemberID  string
	Name      string
	CreatedAt time.Time
}

func NewRetiredDeveloper(dev Developer, at time.Time) RetiredDeveloper {
	return RetiredDeveloper{
		ID:        uuid.New(),
		MemberID:  dev.MemberID,
		Name:      dev.Name,
		CreatedAt: at,
	}
}

type DeveloperStats struct {
	ByLevel  map[Level]int64
	ByStatus map[Status]int64
}
