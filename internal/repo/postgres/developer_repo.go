package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/forsitet/developer-maker/internal/domain"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

const developerColumns = `id, member_id, name, age, developer_level, developer_skill_type, experience_years, status_code, created_at, updated_at`

type DeveloperRepo struct {
	db Queryer
}

func NewDeveloperRepo(db Queryer) *DeveloperRepo {
	return &DeveloperRepo{db: db}
}

func (r *DeveloperRepo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Developer, error) {
	rows, err := queryerFrom(ctx, r.db).Query(ctx,
		`SELECT `+developerColumns+`
         FROM developers
         WHERE status_code = $1
         ORDER BY id`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("list developers by status: %w", err)
	}
	defer rows.Close()

	developers := make([]domain.Developer, 0)
	for rows.Next() {
		dev, err := scanDeveloper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan developer: %w", err)
		}
		developers = append(developers, *dev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate developers: %w", err)
	}

	return developers, nil
}

func (r *DeveloperRepo) GetByMemberID(ctx context.Context, memberID string) (*domain.Developer, error) {
	row := queryerFrom(ctx, r.db).QueryRow(ctx,
		`SELECT `+developerColumns+`
         FROM developers
         WHERE member_id = $1`,
		memberID,
	)

	dev, err := scanDeveloper(row)
	if err != nil {
		return nil, translatePgError(err, "get developer by member id")
	}
	return dev, nil
}

// GetByMemberIDForUpdate locks the row until the surrounding transaction ends.
func (r *DeveloperRepo) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Developer, error) {
	row := queryerFrom(ctx, r.db).QueryRow(ctx,
		`SELECT `+developerColumns+`
         FROM developers
         WHERE member_id = $1
         FOR UPDATE`,
		memberID,
	)

	dev, err := scanDeveloper(row)
	if err != nil {
		return nil, translatePgError(err, "lock developer by member id")
	}
	return dev, nil
}

func (r *DeveloperRepo) Create(ctx context.Context, dev domain.Developer) (*domain.Developer, error) {
	row := queryerFrom(ctx, r.db).QueryRow(ctx,
		`INSERT INTO developers (member_id, name, age, developer_level, developer_skill_type, experience_years, status_code, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING `+developerColumns,
		dev.MemberID,
		dev.Name,
		dev.Age,
		string(dev.Level),
		string(dev.SkillType),
		dev.ExperienceYears,
		string(dev.Status),
		dev.CreatedAt,
		dev.UpdatedAt,
	)

	created, err := scanDeveloper(row)
	if err != nil {
		return nil, translatePgError(err, "insert developer")
	}
	return created, nil
}

// Update writes the mutable columns of dev, keyed by member id.
func (r *DeveloperRepo) Update(ctx context.Context, dev domain.Developer) (*domain.Developer, error) {
	row := queryerFrom(ctx, r.db).QueryRow(ctx,
		`UPDATE developers
         SET developer_level = $2,
             developer_skill_type = $3,
             experience_years = $4,
             status_code = $5,
             updated_at = $6
         WHERE member_id = $1
         RETURNING `+developerColumns,
		dev.MemberID,
		string(dev.Level),
		string(dev.SkillType),
		dev.ExperienceYears,
		string(dev.Status),
		dev.UpdatedAt,
	)

	updated, err := scanDeveloper(row)
	if err != nil {
		return nil, translatePgError(err, "update developer")
	}
	return updated, nil
}

func scanDeveloper(row pgx.Row) (*domain.Developer, error) {
	var (
		dev       domain.Developer
		level     string
		skillType string
		status    string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(
		&dev.ID,
		&dev.MemberID,
		&dev.Name,
		&dev.Age,
		&level,
		&skillType,
		&dev.ExperienceYears,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	dev.Level = domain.Level(level)
	dev.SkillType = domain.SkillType(skillType)
	dev.Status = domain.Status(status)
	dev.CreatedAt = createdAt.UTC()
	dev.UpdatedAt = updatedAt.UTC()

	return &dev, nil
}

func translatePgError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewDomainError(domain.ErrorCodeNotFound, "")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return domain.NewDomainError(domain.ErrorCodeDuplicateMemberID, "")
		case checkViolationCode:
			return domain.NewDomainError(domain.ErrorCodeInvalidRequest, pgErr.ConstraintName+" violated")
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
