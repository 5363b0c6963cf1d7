package service

import (
	"context"
	"fmt"

	"github.com/forsitet/developer-maker/internal/domain"
)

type DeveloperStatsRepo interface {
	CountByLevel(ctx context.Context) (map[domain.Level]int64, error)
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
}

type StatsService struct {
	repo DeveloperStatsRepo
	tx   TxManager
}

func NewStatsService(repo DeveloperStatsRepo, tx TxManager) *StatsService {
	if tx == nil {
		tx = noopTxManager{}
	}
	return &StatsService{repo: repo, tx: tx}
}

// GetDeveloperStats reads both counts from one snapshot.
func (s *StatsService) GetDeveloperStats(ctx context.Context) (*domain.DeveloperStats, error) {
	stats := &domain.DeveloperStats{}
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		byLevel, err := s.repo.CountByLevel(txCtx)
		if err != nil {
			return err
		}

		byStatus, err := s.repo.CountByStatus(txCtx)
		if err != nil {
			return err
		}

		stats.ByLevel = byLevel
		stats.ByStatus = byStatus
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get developer stats: %w", err)
	}
	return stats, nil
}
