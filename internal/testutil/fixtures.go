package testutil

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/systemdesignlab/content-api/internal/domain"
)

// NewCourseFixture returns a minimal valid course for repository tests.
func NewCourseFixture(name string) *domain.Course {
	return &domain.Course{
		Name:     name,
		Category: "System Design",
		Level:    "Intermediate",
	}
}

// NewBlogPostFixture returns a post with a unique slug so tests never trip
// over the slug uniqueness index.
func NewBlogPostFixture(title string) *domain.BlogPost {
	return &domain.BlogPost{
		Title:    title,
		Slug:     fmt.Sprintf("test-%s", uuid.NewString()[:8]),
		Category: "Testing",
		Date:     "2024-01-01",
	}
}
