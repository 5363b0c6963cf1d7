package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/forsitet/developer-maker/internal/domain"
)

type RetiredDeveloperRepo struct {
	db Queryer
}

func NewRetiredDeveloperRepo(db Queryer) *RetiredDeveloperRepo {
	return &RetiredDeveloperRepo{db: db}
}

func (r *RetiredDeveloperRepo) Create(ctx context.Context, rec domain.RetiredDeveloper) error {
	_, err := queryerFrom(ctx, r.db).Exec(ctx,
		`INSERT INTO retired_developers (id, member_id, name, created_at)
         VALUES ($1, $2, $3, $4)`,
		rec.ID,
		rec.MemberID,
		rec.Name,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert retired developer: %w", err)
	}
	return nil
}

func (r *RetiredDeveloperRepo) ListByMemberID(ctx context.Context, memberID string) ([]domain.RetiredDeveloper, error) {
	rows, err := queryerFrom(ctx, r.db).Query(ctx,
		`SELECT id, member_id, name, created_at
         FROM retired_developers
         WHERE member_id = $1
         ORDER BY created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("list retired developers: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RetiredDeveloper, 0)
	for rows.Next() {
		var (
			rec       domain.RetiredDeveloper
			createdAt time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.MemberID, &rec.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan retired developer: %w", err)
		}
		rec.CreatedAt = createdAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retired developers: %w", err)
	}

	return records, nil
}
