package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDatabaseURL means the process was started without a connection
// string. Public reads still work through the static fallback.
var ErrNoDatabaseURL = errors.New("database connection string is not configured")

// Store lazily opens the database on first use. A successful open runs the
// additive schema migration and the idempotent seed exactly once and caches
// the handle for the process lifetime; a failed open is retried on the next
// request so a recovering database is picked up without a restart.
type Store struct {
	dsn string

	mu sync.Mutex
	db *gorm.DB
}

func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

func (s *Store) Get(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.WithContext(ctx), nil
	}

	if s.dsn == "" {
		return nil, ErrNoDatabaseURL
	}

	db, err := gorm.Open(postgres.Open(s.dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Additive DDL only: AutoMigrate creates missing tables and columns and
	// never drops or rewrites existing ones.
	if err := db.WithContext(ctx).AutoMigrate(
		&domain.Course{},
		&domain.BlogPost{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	if err := SeedIfEmpty(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("seed database: %w", err)
	}

	s.db = db
	return s.db.WithContext(ctx), nil
}

func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		Course:   NewCourseRepository(store),
		BlogPost: NewBlogPostRepository(store),
	}
}
