package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forsitet/developer-maker/internal/domain"
)

type DeveloperRepository interface {
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Developer, error)
	GetByMemberID(ctx context.Context, memberID string) (*domain.Developer, error)
	GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Developer, error)
	Create(ctx context.Context, dev domain.Developer) (*domain.Developer, error)
	Update(ctx context.Context, dev domain.Developer) (*domain.Developer, error)
}

type RetiredDeveloperRepository interface {
	Create(ctx context.Context, rec domain.RetiredDeveloper) error
	ListByMemberID(ctx context.Context, memberID string) ([]domain.RetiredDeveloper, error)
}

// LifecycleRecorder receives successful lifecycle transitions.
type LifecycleRecorder interface {
	DeveloperCreated(level domain.Level)
	DeveloperEdited()
	DeveloperRetired()
}

type CreateDeveloperInput struct {
	MemberID        string
	Name            string
	Age             int
	Level           domain.Level
	SkillType       domain.SkillType
	ExperienceYears int
}

type EditDeveloperInput struct {
	Level           domain.Level
	SkillType       domain.SkillType
	ExperienceYears int
}

type DeveloperService struct {
	developers DeveloperRepository
	retired    RetiredDeveloperRepository
	tx         TxManager
	recorder   LifecycleRecorder
	nowFunc    func() time.Time
}

func NewDeveloperService(
	developers DeveloperRepository,
	retired RetiredDeveloperRepository,
	tx TxManager,
	recorder LifecycleRecorder,
	nowFunc func() time.Time,
) *DeveloperService {
	if tx == nil {
		tx = noopTxManager{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &DeveloperService{
		developers: developers,
		retired:    retired,
		tx:         tx,
		recorder:   recorder,
		nowFunc:    nowFunc,
	}
}

func (s *DeveloperService) ListEmployedDevelopers(ctx context.Context) ([]domain.Developer, error) {
	var developers []domain.Developer
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.developers.ListByStatus(txCtx, domain.StatusEmployed)
		if err != nil {
			return err
		}
		developers = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list employed developers: %w", err)
	}
	return developers, nil
}

func (s *DeveloperService) GetDeveloperDetail(ctx context.Context, memberID string) (*domain.Developer, error) {
	memberID, err := normalizeMemberID(memberID)
	if err != nil {
		return nil, err
	}

	var dev *domain.Developer
	err = s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.developers.GetByMemberID(txCtx, memberID)
		if err != nil {
			return err
		}
		dev = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get developer %s: %w", memberID, err)
	}
	return dev, nil
}

// CreateDeveloper checks the member id before inserting; the unique
// constraint on member_id still rejects a concurrent duplicate.
func (s *DeveloperService) CreateDeveloper(ctx context.Context, in CreateDeveloperInput) (*domain.Developer, error) {
	memberID, err := normalizeMemberID(in.MemberID)
	if err != nil {
		return nil, err
	}

	dev, err := domain.NewDeveloper(memberID, strings.TrimSpace(in.Name), in.Age, in.Level, in.SkillType, in.ExperienceYears)
	if err != nil {
		return nil, err
	}

	var created *domain.Developer
	err = s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.developers.GetByMemberID(txCtx, memberID)
		if err != nil && !domain.IsCode(err, domain.ErrorCodeNotFound) {
			return err
		}
		if existing != nil {
			return domain.NewDomainError(domain.ErrorCodeDuplicateMemberID,
				fmt.Sprintf("member id %s already exists", memberID))
		}

		now := s.nowFunc().UTC()
		dev.CreatedAt = now
		dev.UpdatedAt = now

		result, err := s.developers.Create(txCtx, dev)
		if err != nil {
			return err
		}
		created = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create developer %s: %w", memberID, err)
	}

	s.recorder.DeveloperCreated(created.Level)
	return created, nil
}

func (s *DeveloperService) EditDeveloper(ctx context.Context, memberID string, in EditDeveloperInput) (*domain.Developer, error) {
	memberID, err := normalizeMemberID(memberID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateExperienceYears(in.Level, in.ExperienceYears); err != nil {
		return nil, err
	}

	var updated *domain.Developer
	err = s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.developers.GetByMemberIDForUpdate(txCtx, memberID)
		if err != nil {
			return err
		}

		next, err := existing.WithProfile(in.Level, in.SkillType, in.ExperienceYears)
		if err != nil {
			return err
		}
		next.UpdatedAt = s.nowFunc().UTC()

		result, err := s.developers.Update(txCtx, next)
		if err != nil {
			return err
		}
		updated = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit developer %s: %w", memberID, err)
	}

	s.recorder.DeveloperEdited()
	return updated, nil
}

// RetireDeveloper flips the status and appends the retired record in one
// transaction. Retiring an already retired developer returns it unchanged
// and writes nothing.
func (s *DeveloperService) RetireDeveloper(ctx context.Context, memberID string) (*domain.Developer, error) {
	memberID, err := normalizeMemberID(memberID)
	if err != nil {
		return nil, err
	}

	var (
		result  *domain.Developer
		changed bool
	)
	err = s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.developers.GetByMemberIDForUpdate(txCtx, memberID)
		if err != nil {
			return err
		}
		if existing.IsRetired() {
			result = existing
			return nil
		}

		now := s.nowFunc().UTC()
		next := existing.Retire()
		next.UpdatedAt = now

		updated, err := s.developers.Update(txCtx, next)
		if err != nil {
			return err
		}

		if err := s.retired.Create(txCtx, domain.NewRetiredDeveloper(*updated, now)); err != nil {
			return err
		}

		result = updated
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("retire developer %s: %w", memberID, err)
	}

	if changed {
		s.recorder.DeveloperRetired()
	}
	return result, nil
}

func (s *DeveloperService) ListRetirements(ctx context.Context, memberID string) ([]domain.RetiredDeveloper, error) {
	memberID, err := normalizeMemberID(memberID)
	if err != nil {
		return nil, err
	}

	var records []domain.RetiredDeveloper
	err = s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.retired.ListByMemberID(txCtx, memberID)
		if err != nil {
			return err
		}
		records = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list retirements of %s: %w", memberID, err)
	}
	return records, nil
}

func normalizeMemberID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domain.NewDomainError(domain.ErrorCodeInvalidRequest, "memberId is required")
	}
	return trimmed, nil
}

type noopRecorder struct{}

func (noopRecorder) DeveloperCreated(domain.Level) {}
func (noopRecorder) DeveloperEdited()              {}
func (noopRecorder) DeveloperRetired()             {}
