//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"

	"github.com/forsitet/developer-maker/internal/domain"
	"github.com/forsitet/developer-maker/internal/repo/postgres"
	"github.com/forsitet/developer-maker/internal/service"
)

// connString prefers TEST_DATABASE_CONN and falls back to a throwaway
// Postgres container.
func connString(t *testing.T) string {
	t.Helper()

	if conn := os.Getenv("TEST_DATABASE_CONN"); conn != "" {
		return conn
	}
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("dmaker"),
		tcpostgres.WithUsername("dmaker"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	conn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	return conn
}

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, connString(t))
	if err != nil {
		t.Fatalf("failed to open test pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Skipf("database not reachable: %v", err)
	}

	db := postgres.OpenDB(pool)
	t.Cleanup(func() { _ = db.Close() })

	if err := postgres.RunMigrations(ctx, db, logger); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return pool
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	queries := []string{
		`DELETE FROM retired_developers`,
		`DELETE FROM developers`,
	}

	for _, q := range queries {
		if _, err := pool.Exec(ctx, q); err != nil {
			t.Fatalf("cleanup query %q failed: %v", q, err)
		}
	}
}

func newServices(pool *pgxpool.Pool) (*service.DeveloperService, *service.StatsService) {
	developers := postgres.NewDeveloperRepo(pool)
	retired := postgres.NewRetiredDeveloperRepo(pool)
	tx := postgres.NewTxManager(pool)

	return service.NewDeveloperService(developers, retired, tx, nil, nil),
		service.NewStatsService(developers, tx)
}

func countRetired(t *testing.T, pool *pgxpool.Pool, memberID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM retired_developers WHERE member_id = $1`, memberID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestDeveloperLifecycle(t *testing.T) {
	pool := openTestPool(t)
	cleanupTables(t, pool)

	ctx := context.Background()
	svc, stats := newServices(pool)

	created, err := svc.CreateDeveloper(ctx, service.CreateDeveloperInput{
		MemberID: "m1", Name: "snow", Age: 32,
		Level: domain.LevelSenior, SkillType: domain.SkillTypeBackEnd, ExperienceYears: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEmployed, created.Status)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateDeveloper(ctx, service.CreateDeveloperInput{
		MemberID: "m1", Name: "again", Age: 20,
		Level: domain.LevelJunior, SkillType: domain.SkillTypeBackEnd, ExperienceYears: 1,
	})
	assert.True(t, domain.IsCode(err, domain.ErrorCodeDuplicateMemberID), "got %v", err)

	edited, err := svc.EditDeveloper(ctx, "m1", service.EditDeveloperInput{
		Level: domain.LevelJunior, SkillType: domain.SkillTypeFrontEnd, ExperienceYears: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelJunior, edited.Level)
	assert.Equal(t, "snow", edited.Name)

	retired, err := svc.RetireDeveloper(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRetired, retired.Status)
	assert.Equal(t, 1, countRetired(t, pool, "m1"))

	employed, err := svc.ListEmployedDevelopers(ctx)
	require.NoError(t, err)
	assert.Empty(t, employed)

	history, err := svc.ListRetirements(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "snow", history[0].Name)

	_, err = svc.GetDeveloperDetail(ctx, "m2")
	assert.True(t, domain.IsCode(err, domain.ErrorCodeNotFound), "got %v", err)

	got, err := stats.GetDeveloperStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ByStatus[domain.StatusRetired])
	assert.Zero(t, got.ByLevel[domain.LevelJunior])
}

func TestConcurrentCreateSameMemberID(t *testing.T) {
	pool := openTestPool(t)
	cleanupTables(t, pool)

	svc, _ := newServices(pool)

	var succeeded, duplicates atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := svc.CreateDeveloper(ctx, service.CreateDeveloperInput{
				MemberID: "race", Name: fmt.Sprintf("dev-%d", i), Age: 25,
				Level: domain.LevelMid, SkillType: domain.SkillTypeFullStack, ExperienceYears: 5,
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case domain.IsCode(err, domain.ErrorCodeDuplicateMemberID):
				duplicates.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(7), duplicates.Load())
}

func TestConcurrentRetireWritesOneRecord(t *testing.T) {
	pool := openTestPool(t)
	cleanupTables(t, pool)

	ctx := context.Background()
	svc, _ := newServices(pool)

	_, err := svc.CreateDeveloper(ctx, service.CreateDeveloperInput{
		MemberID: "leaver", Name: "rain", Age: 40,
		Level: domain.LevelSenior, SkillType: domain.SkillTypeBackEnd, ExperienceYears: 15,
	})
	require.NoError(t, err)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 5; i++ {
		g.Go(func() error {
			dev, err := svc.RetireDeveloper(gctx, "leaver")
			if err != nil {
				return err
			}
			if dev.Status != domain.StatusRetired {
				return fmt.Errorf("unexpected status %s", dev.Status)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, countRetired(t, pool, "leaver"))
}
