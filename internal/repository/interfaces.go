package repository

import (
	"context"

	"github.com/systemdesignlab/content-api/internal/domain"
)

type CourseRepository interface {
	List(ctx context.Context) ([]*domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id int64) error
}

type BlogPostRepository interface {
	List(ctx context.Context) ([]*domain.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id int64) error
	UpdateSeriesOrder(ctx context.Context, id int64, order *int) error
}

type Repositories struct {
	Course   CourseRepository
	BlogPost BlogPostRepository
}
