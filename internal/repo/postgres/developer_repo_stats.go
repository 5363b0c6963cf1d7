package postgres

import (
	"context"
	"fmt"

	"github.com/forsitet/developer-maker/internal/domain"
)

func (r *DeveloperRepo) CountByLevel(ctx context.Context) (map[domain.Level]int64, error) {
	counts, err := r.countGroupedBy(ctx,
		`SELECT developer_level, COUNT(*) AS cnt
         FROM developers
         WHERE status_code = 'EMPLOYED'
         GROUP BY developer_level
         ORDER BY developer_level`,
	)
	if err != nil {
		return nil, fmt.Errorf("count developers by level: %w", err)
	}

	result := make(map[domain.Level]int64, len(counts))
	for k, v := range counts {
		result[domain.Level(k)] = v
	}
	return result, nil
}

func (r *DeveloperRepo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	counts, err := r.countGroupedBy(ctx,
		`SELECT status_code, COUNT(*) AS cnt
         FROM developers
         GROUP BY status_code
         ORDER BY status_code`,
	)
	if err != nil {
		return nil, fmt.Errorf("count developers by status: %w", err)
	}

	result := make(map[domain.Status]int64, len(counts))
	for k, v := range counts {
		result[domain.Status(k)] = v
	}
	return result, nil
}

func (r *DeveloperRepo) countGroupedBy(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := queryerFrom(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			cnt int64
		)
		if err := rows.Scan(&key, &cnt); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		result[key] = cnt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}

	return result, nil
}
