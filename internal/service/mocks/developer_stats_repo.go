package mocks

import (
	"context"

	"github.com/forsitet/developer-maker/internal/domain"
)

type MockDeveloperStatsRepo struct {
	CountByLevelResult  map[domain.Level]int64
	CountByLevelErr     error
	CountByStatusResult map[domain.Status]int64
	CountByStatusErr    error
}

func (m *MockDeveloperStatsRepo) CountByLevel(ctx context.Context) (map[domain.Level]int64, error) {
	return m.CountByLevelResult, m.CountByLevelErr
}

func (m *MockDeveloperStatsRepo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	return m.CountByStatusResult, m.CountByStatusErr
}
