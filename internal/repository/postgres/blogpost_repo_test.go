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

func TestBlogPostRepository_Seed(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()

	posts, err := testDB.Repos.BlogPost.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, len(content.BlogPosts()))

	t.Run("seeding again is a no-op", func(t *testing.T) {
		require.NoError(t, postgres.SeedIfEmpty(testDB.DB))

		again, err := testDB.Repos.BlogPost.List(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(posts))
	})

	t.Run("seeded post found by slug", func(t *testing.T) {
		post, err := testDB.Repos.BlogPost.GetBySlug(ctx, "what-is-system-design")
		require.NoError(t, err)
		assert.Equal(t, int64(1), post.ID)
	})
}

func TestBlogPostRepository_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := testDB.Repos.BlogPost

	testDB.Truncate(t)

	post := testutil.NewBlogPostFixture("Queues and Backpressure")
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	t.Run("get by slug", func(t *testing.T) {
		got, err := repo.GetBySlug(ctx, post.Slug)
		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
	})

	t.Run("absent slug", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "absent-slug")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		post.Title = "Queues, Backpressure and Load Shedding"
		require.NoError(t, repo.Update(ctx, post))

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Queues, Backpressure and Load Shedding", got.Title)
	})

	t.Run("update absent id", func(t *testing.T) {
		absent := testutil.NewBlogPostFixture("Ghost")
		absent.ID = 99999
		assert.ErrorIs(t, repo.Update(ctx, absent), domain.ErrNotFound)
	})

	t.Run("series order set and cleared", func(t *testing.T) {
		order := 3
		require.NoError(t, repo.UpdateSeriesOrder(ctx, post.ID, &order))

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, got.SeriesOrder)
		assert.Equal(t, 3, *got.SeriesOrder)

		require.NoError(t, repo.UpdateSeriesOrder(ctx, post.ID, nil))
		got, err = repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Nil(t, got.SeriesOrder)
	})

	t.Run("series order update on absent id is a silent no-op", func(t *testing.T) {
		assert.NoError(t, repo.UpdateSeriesOrder(ctx, 99999, nil))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, post.ID))
		assert.ErrorIs(t, repo.Delete(ctx, post.ID), domain.ErrNotFound)
	})
}
