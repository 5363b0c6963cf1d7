package mocks

import (
	"context"
	"sync"

	"github.com/forsitet/developer-maker/internal/domain"
)

type MockRetiredDeveloperRepository struct {
	mu      sync.Mutex
	Records []domain.RetiredDeveloper

	CreateErr error
	ListErr   error
}

func (m *MockRetiredDeveloperRepository) Create(ctx context.Context, rec domain.RetiredDeveloper) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockRetiredDeveloperRepository) ListByMemberID(ctx context.Context, memberID string) ([]domain.RetiredDeveloper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	result := make([]domain.RetiredDeveloper, 0)
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].MemberID == memberID {
			result = append(result, m.Records[i])
		}
	}
	return result, nil
}

func (m *MockRetiredDeveloperRepository) CountFor(memberID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.Records {
		if r.MemberID == memberID {
			n++
		}
	}
	return n
}
