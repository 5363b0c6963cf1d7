package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/forsitet/developer-maker/internal/domain"
)

var developerColumnNames = []string{
	"id", "member_id", "name", "age", "developer_level", "developer_skill_type",
	"experience_years", "status_code", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestDeveloperRepo_ListByStatus(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(developerColumnNames).
		AddRow(int64(1), "memberId1", "Alice", 25, "JUNIOR", "BACK_END", 2, "EMPLOYED", now, now).
		AddRow(int64(2), "memberId2", "Bob", 40, "SENIOR", "FRONT_END", 15, "EMPLOYED", now, now)

	mock.ExpectQuery("FROM developers").
		WithArgs("EMPLOYED").
		WillReturnRows(rows)

	devs, err := repo.ListByStatus(context.Background(), domain.StatusEmployed)
	if err != nil {
		t.Fatalf("ListByStatus returned error: %v", err)
	}

	if len(devs) != 2 {
		t.Fatalf("expected 2 developers, got %d", len(devs))
	}
	if devs[0].MemberID != "memberId1" || devs[0].Level != domain.LevelJunior {
		t.Errorf("unexpected first developer: %+v", devs[0])
	}
	if devs[1].SkillType != domain.SkillTypeFrontEnd || devs[1].ExperienceYears != 15 {
		t.Errorf("unexpected second developer: %+v", devs[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeveloperRepo_GetByMemberID_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)

	mock.ExpectQuery("WHERE member_id = ").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByMemberID(context.Background(), "ghost")
	if !domain.IsCode(err, domain.ErrorCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeveloperRepo_Create(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	dev := domain.Developer{
		MemberID:        "m1",
		Name:            "snow",
		Age:             32,
		Level:           domain.LevelSenior,
		SkillType:       domain.SkillTypeBackEnd,
		ExperienceYears: 12,
		Status:          domain.StatusEmployed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	mock.ExpectQuery("INSERT INTO developers").
		WithArgs("m1", "snow", 32, "SENIOR", "BACK_END", 12, "EMPLOYED", now, now).
		WillReturnRows(pgxmock.NewRows(developerColumnNames).
			AddRow(int64(10), "m1", "snow", 32, "SENIOR", "BACK_END", 12, "EMPLOYED", now, now))

	created, err := repo.Create(context.Background(), dev)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 10 || created.Status != domain.StatusEmployed {
		t.Fatalf("unexpected created developer: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeveloperRepo_Create_UniqueViolation(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)

	mock.ExpectQuery("INSERT INTO developers").
		WithArgs("m1", "snow", 32, "SENIOR", "BACK_END", 12, "EMPLOYED", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "developers_member_id_key"})

	_, err := repo.Create(context.Background(), domain.Developer{
		MemberID:        "m1",
		Name:            "snow",
		Age:             32,
		Level:           domain.LevelSenior,
		SkillType:       domain.SkillTypeBackEnd,
		ExperienceYears: 12,
		Status:          domain.StatusEmployed,
	})
	if !domain.IsCode(err, domain.ErrorCodeDuplicateMemberID) {
		t.Fatalf("expected DUPLICATE_MEMBER_ID, got %v", err)
	}
}

func TestDeveloperRepo_Update_RunsInsideTransaction(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)
	tm := NewTxManager(mock)
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectQuery("SET developer_level = ").
		WithArgs("m1", "JUNIOR", "FRONT_END", 2, "EMPLOYED", now).
		WillReturnRows(pgxmock.NewRows(developerColumnNames).
			AddRow(int64(10), "m1", "snow", 32, "JUNIOR", "FRONT_END", 2, "EMPLOYED", now, now))
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		updated, err := repo.Update(ctx, domain.Developer{
			MemberID:        "m1",
			Level:           domain.LevelJunior,
			SkillType:       domain.SkillTypeFrontEnd,
			ExperienceYears: 2,
			Status:          domain.StatusEmployed,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
		if updated.Level != domain.LevelJunior {
			t.Errorf("unexpected level: %s", updated.Level)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update in tx returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeveloperRepo_CountByStatus(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewDeveloperRepo(mock)

	mock.ExpectQuery("GROUP BY status_code").
		WillReturnRows(pgxmock.NewRows([]string{"status_code", "cnt"}).
			AddRow("EMPLOYED", int64(3)).
			AddRow("RETIRED", int64(1)))

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if counts[domain.StatusEmployed] != 3 || counts[domain.StatusRetired] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestRetiredDeveloperRepo_CreateAndList(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewRetiredDeveloperRepo(mock)
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	rec := domain.RetiredDeveloper{ID: uuid.New(), MemberID: "m1", Name: "snow", CreatedAt: now}

	mock.ExpectExec("INSERT INTO retired_developers").
		WithArgs(rec.ID, "m1", "snow", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM retired_developers").
		WithArgs("m1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "name", "created_at"}).
			AddRow(rec.ID, "m1", "snow", now))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	records, err := repo.ListByMemberID(context.Background(), "m1")
	if err != nil {
		t.Fatalf("ListByMemberID returned error: %v", err)
	}
	if len(records) != 1 || records[0].ID != rec.ID {
		t.Fatalf("unexpected records: %+v", records)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslatePgError(t *testing.T) {
	t.Parallel()

	if !domain.IsCode(translatePgError(pgx.ErrNoRows, "op"), domain.ErrorCodeNotFound) {
		t.Fatal("expected no rows to map to NOT_FOUND")
	}

	unique := &pgconn.PgError{Code: uniqueViolationCode}
	if !domain.IsCode(translatePgError(unique, "op"), domain.ErrorCodeDuplicateMemberID) {
		t.Fatal("expected unique violation to map to DUPLICATE_MEMBER_ID")
	}

	check := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "developers_experience_years_check"}
	if !domain.IsCode(translatePgError(check, "op"), domain.ErrorCodeInvalidRequest) {
		t.Fatal("expected check violation to map to INVALID_REQUEST")
	}

	other := errors.New("connection reset")
	if got := translatePgError(other, "op"); !errors.Is(got, other) {
		t.Fatalf("expected wrapped original error, got %v", got)
	}
}
