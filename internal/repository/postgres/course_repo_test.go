package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/systemdesignlab/content-api/internal/content"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/repository/postgres"
	"github.com/systemdesignlab/content-api/internal/testutil"
)

func TestCourseRepository_SeedAndSequence(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()

	t.Run("cold start seeds the snapshot", func(t *testing.T) {
		courses, err := testDB.Repos.Course.List(ctx)
		require.NoError(t, err)
		require.Len(t, courses, len(content.Courses()))
		assert.Equal(t, int64(9), courses[0].ID, "seed rows keep their fixed ids")
	})

	t.Run("seeding again is a no-op", func(t *testing.T) {
		require.NoError(t, postgres.SeedIfEmpty(testDB.DB))
		require.NoError(t, postgres.SeedIfEmpty(testDB.DB))

		courses, err := testDB.Repos.Course.List(ctx)
		require.NoError(t, err)
		assert.Len(t, courses, len(content.Courses()))
	})

	t.Run("generated ids do not collide with seed ids", func(t *testing.T) {
		course := testutil.NewCourseFixture("Fresh Course")
		require.NoError(t, testDB.Repos.Course.Create(ctx, course))
		assert.Greater(t, course.ID, int64(9))
	})
}

func TestCourseRepository_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := testDB.Repos.Course

	testDB.Truncate(t)

	course := testutil.NewCourseFixture("Consensus Algorithms")
	course.Featured = true
	require.NoError(t, repo.Create(ctx, course))
	require.NotZero(t, course.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Consensus Algorithms", got.Name)
		assert.True(t, got.Featured)
	})

	t.Run("get absent id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update replaces mutable fields including zero values", func(t *testing.T) {
		course.Name = "Consensus Algorithms, Revised"
		course.Featured = false
		require.NoError(t, repo.Update(ctx, course))

		got, err := repo.GetByID(ctx, course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Consensus Algorithms, Revised", got.Name)
		assert.False(t, got.Featured, "full replace must write zero values through")
	})

	t.Run("update absent id", func(t *testing.T) {
		absent := testutil.NewCourseFixture("Ghost")
		absent.ID = 99999
		assert.ErrorIs(t, repo.Update(ctx, absent), domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, course.ID))
		_, err := repo.GetByID(ctx, course.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete absent id", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, 99999), domain.ErrNotFound)
	})
}

func TestCourseRepository_JSONColumns(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()

	course, err := testDB.Repos.Course.GetByID(ctx, 9)
	require.NoError(t, err)

	require.NotEmpty(t, course.Modules)
	assert.Equal(t, "Introduction to System Design", course.Modules[0].Title)
	assert.NotEmpty(t, course.LearningOutcomes)
}
