package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/forsitet/developer-maker/internal/domain"
)

// MockDeveloperRepository keeps developers in memory keyed by member id and
// counts write calls. Err fields, when set, are returned instead.
type MockDeveloperRepository struct {
	mu         sync.Mutex
	developers map[string]domain.Developer
	nextID     int64

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error

	CreateCalls int
	UpdateCalls int
}

func NewMockDeveloperRepository(seed ...domain.Developer) *MockDeveloperRepository {
	m := &MockDeveloperRepository{developers: make(map[string]domain.Developer)}
	for _, d := range seed {
		m.nextID++
		if d.ID == 0 {
			d.ID = m.nextID
		}
		m.developers[d.MemberID] = d
	}
	return m
}

func (m *MockDeveloperRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Developer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	result := make([]domain.Developer, 0)
	for _, d := range m.developers {
		if d.Status == status {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockDeveloperRepository) GetByMemberID(ctx context.Context, memberID string) (*domain.Developer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	d, ok := m.developers[memberID]
	if !ok {
		return nil, domain.NewDomainError(domain.ErrorCodeNotFound, "")
	}
	return &d, nil
}

func (m *MockDeveloperRepository) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Developer, error) {
	return m.GetByMemberID(ctx, memberID)
}

func (m *MockDeveloperRepository) Create(ctx context.Context, dev domain.Developer) (*domain.Developer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if _, exists := m.developers[dev.MemberID]; exists {
		return nil, domain.NewDomainError(domain.ErrorCodeDuplicateMemberID, "")
	}

	m.nextID++
	dev.ID = m.nextID
	m.developers[dev.MemberID] = dev
	return &dev, nil
}

func (m *MockDeveloperRepository) Update(ctx context.Context, dev domain.Developer) (*domain.Developer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls++
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}

	current, ok := m.developers[dev.MemberID]
	if !ok {
		return nil, domain.NewDomainError(domain.ErrorCodeNotFound, "")
	}
	current.Level = dev.Level
	current.SkillType = dev.SkillType
	current.ExperienceYears = dev.ExperienceYears
	current.Status = dev.Status
	current.UpdatedAt = dev.UpdatedAt
	m.developers[dev.MemberID] = current
	return &current, nil
}

// Stored returns the persisted copy of memberID.
func (m *MockDeveloperRepository) Stored(memberID string) (domain.Developer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.developers[memberID]
	return d, ok
}
