package postgres

import (
	"context"
	"errors"

	"github.com/systemdesignlab/content-api/internal/domain"
	"gorm.io/gorm"
)

type courseRepository struct {
	store *Store
}

func NewCourseRepository(store *Store) *courseRepository {
	return &courseRepository{store: store}
}

func (r *courseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	var courses []*domain.Course
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	var course domain.Course
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	return db.Create(course).Error
}

// Update replaces all mutable fields of the course row. Zero values are
// written through, matching the full-replace PUT contract.
func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&domain.Course{}).Where("id = ?", course.ID).
		Select("*").Omit("id", "created_at").Updates(course)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&domain.Course{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
