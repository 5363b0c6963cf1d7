package domain

import "fmt"

const (
	MaxJuniorExperienceYears = 4
	MinSeniorExperienceYears = 10
)

// ExperienceRange is an inclusive bound on experience years. Max < 0 means
// there is no upper bound.
type ExperienceRange struct {
	Min int
	Max int
}

func (r ExperienceRange) Contains(years int) bool {
	if years < r.Min {
		return false
	}
	return r.Max < 0 || years <= r.Max
}

func (r ExperienceRange) String() string {
	if r.Max < 0 {
		return fmt.Sprintf("%d or more", r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// RangeFor returns the allowed experience range of level. Adjacent levels
// share their boundary year.
func RangeFor(level Level) (ExperienceRange, bool) {
	switch level {
	case LevelJunior:
		return ExperienceRange{Min: 0, Max: MaxJuniorExperienceYears}, true
	case LevelMid:
		return ExperienceRange{Min: MaxJuniorExperienceYears, Max: MinSeniorExperienceYears}, true
	case LevelSenior:
		return ExperienceRange{Min: MinSeniorExperienceYears, Max: -1}, true
	default:
		return ExperienceRange{}, false
	}
}

func ValidateExperienceYears(level Level, years int) error {
	r, ok := RangeFor(level)
	if !ok {
		return NewDomainError(ErrorCodeInvalidRequest, fmt.Sprintf("unknown developer level: %s", level))
	}
	if !r.Contains(years) {
		return NewDomainError(ErrorCodeInvalidExperienceRange,
			fmt.Sprintf("%s requires %s experience years, got %d", level, r, years))
	}
	return nil
}
