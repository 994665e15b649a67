package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestSortPostsForDisplay(t *testing.T) {
	t.Run("system design pinned then series order", func(t *testing.T) {
		posts := []*BlogPost{
			{ID: 1, Category: CategorySystemDesign, SeriesOrder: intPtr(2)},
			{ID: 2, Category: "Other", SeriesOrder: intPtr(1)},
			{ID: 3, Category: CategorySystemDesign, SeriesOrder: intPtr(1)},
		}

		SortPostsForDisplay(posts)

		assert.Equal(t, []int64{3, 1, 2}, ids(posts))
	})

	t.Run("absent series order sorts last", func(t *testing.T) {
		posts := []*BlogPost{
			{ID: 1, Category: "Other", Date: "2024-06-01"},
			{ID: 2, Category: "Other", SeriesOrder: intPtr(5), Date: "2023-01-01"},
		}

		SortPostsForDisplay(posts)

		assert.Equal(t, []int64{2, 1}, ids(posts))
	})

	t.Run("newer date first within same order", func(t *testing.T) {
		posts := []*BlogPost{
			{ID: 1, Category: "Other", Date: "2024-01-01"},
			{ID: 2, Category: "Other", Date: "2024-06-01"},
		}

		SortPostsForDisplay(posts)

		assert.Equal(t, []int64{2, 1}, ids(posts))
	})

	t.Run("id breaks date ties deterministically", func(t *testing.T) {
		posts := []*BlogPost{
			{ID: 1, Category: "Other", Date: "2024-01-01"},
			{ID: 2, Category: "Other", Date: "2024-01-01"},
			{ID: 3, Category: "Other", Date: "2024-01-01"},
		}

		SortPostsForDisplay(posts)

		assert.Equal(t, []int64{3, 2, 1}, ids(posts))
	})
}

func TestSortCoursesForDisplay(t *testing.T) {
	courses := []*Course{
		{ID: 3},
		{ID: 2, Featured: true},
		{ID: 1},
		{ID: 5, Featured: true},
	}

	SortCoursesForDisplay(courses)

	got := make([]int64, len(courses))
	for i, c := range courses {
		got[i] = c.ID
	}
	assert.Equal(t, []int64{2, 5, 1, 3}, got)
}

func ids(posts []*BlogPost) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
