package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/systemdesignlab/content-api/internal/repository"
	repoPostgres "github.com/systemdesignlab/content-api/internal/repository/postgres"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestDB manages a testcontainers PostgreSQL instance with the schema
// migrated and the snapshot seeded, exactly as a cold production start
// would leave it.
type TestDB struct {
	Container testcontainers.Container
	Store     *repoPostgres.Store
	Repos     *repository.Repositories
	DB        *gorm.DB
	DSN       string
}

// NewTestDB starts a PostgreSQL container and bootstraps the store against
// it. The first Get forces the migrate-and-seed path.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_content"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	store := repoPostgres.NewStore(dsn)
	db, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("failed to bootstrap store: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		Store:     store,
		Repos:     repoPostgres.NewRepositories(store),
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container.
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation.
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	for _, table := range []string{"courses", "blog_posts"} {
		if err := tdb.DB.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
