package service

import (
	"context"
	"errors"
	"log"

	"github.com/systemdesignlab/content-api/internal/content"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/redact"
	"github.com/systemdesignlab/content-api/internal/repository"
)

// CourseService serves the course catalog. Public reads go through the
// read-through fallback: any store failure is answered from the bundled
// snapshot with a sanitized warning, so catalog availability never depends
// on database availability. Admin writes have no fallback and fail loudly.
type CourseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

// ListPublic returns the catalog in display order plus a non-empty warning
// when the snapshot had to stand in for the live store.
func (s *CourseService) ListPublic(ctx context.Context) ([]*domain.Course, string, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("WARN [service.CourseService] store read failed, serving snapshot: %v", err)
		courses = content.Courses()
		domain.SortCoursesForDisplay(courses)
		return courses, storeWarning(err), nil
	}

	domain.SortCoursesForDisplay(courses)
	return courses, "", nil
}

func (s *CourseService) GetPublic(ctx context.Context, id int64) (*domain.Course, string, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return course, "", nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrNotFound
	}

	log.Printf("WARN [service.CourseService] store read failed, serving snapshot: %v", err)
	for _, c := range content.Courses() {
		if c.ID == id {
			return c, storeWarning(err), nil
		}
	}
	return nil, "", domain.ErrNotFound
}

func (s *CourseService) Create(ctx context.Context, course *domain.Course) error {
	return s.repo.Create(ctx, course)
}

func (s *CourseService) Update(ctx context.Context, course *domain.Course) error {
	return s.repo.Update(ctx, course)
}

func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func storeWarning(err error) string {
	return "live data unavailable, serving bundled content: " + redact.ConnString(err.Error())
}
