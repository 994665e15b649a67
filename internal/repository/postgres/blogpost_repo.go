package postgres

import (
	"context"
	"errors"

	"github.com/systemdesignlab/content-api/internal/domain"
	"gorm.io/gorm"
)

type blogPostRepository struct {
	store *Store
}

func NewBlogPostRepository(store *Store) *blogPostRepository {
	return &blogPostRepository{store: store}
}

func (r *blogPostRepository) List(ctx context.Context) ([]*domain.BlogPost, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	var posts []*domain.BlogPost
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	var post domain.BlogPost
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	var post domain.BlogPost
	if err := db.First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	return db.Create(post).Error
}

func (r *blogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&domain.BlogPost{}).Where("id = ?", post.ID).
		Select("*").Omit("id", "created_at").Updates(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&domain.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSeriesOrder sets only the series order column; a nil order clears
// it. Rows that do not exist are silently skipped, matching the best-effort
// batch reorder contract.
func (r *blogPostRepository) UpdateSeriesOrder(ctx context.Context, id int64, order *int) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}

	return db.Model(&domain.BlogPost{}).Where("id = ?", id).
		Update("series_order", order).Error
}
