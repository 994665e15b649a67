package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/systemdesignlab/content-api/internal/content"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/repository"
)

type BlogService struct {
	repo repository.BlogPostRepository
}

func NewBlogService(repo repository.BlogPostRepository) *BlogService {
	return &BlogService{repo: repo}
}

// ListPublic returns posts in display order, falling back to the bundled
// snapshot with a sanitized warning when the store is unavailable.
func (s *BlogService) ListPublic(ctx context.Context) ([]*domain.BlogPost, string, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("WARN [service.BlogService] store read failed, serving snapshot: %v", err)
		posts = content.BlogPosts()
		domain.SortPostsForDisplay(posts)
		return posts, storeWarning(err), nil
	}

	domain.SortPostsForDisplay(posts)
	return posts, "", nil
}

func (s *BlogService) GetPublicByID(ctx context.Context, id int64) (*domain.BlogPost, string, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return post, "", nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrNotFound
	}

	log.Printf("WARN [service.BlogService] store read failed, serving snapshot: %v", err)
	for _, p := range content.BlogPosts() {
		if p.ID == id {
			return p, storeWarning(err), nil
		}
	}
	return nil, "", domain.ErrNotFound
}

func (s *BlogService) GetPublicBySlug(ctx context.Context, slug string) (*domain.BlogPost, string, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err == nil {
		return post, "", nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrNotFound
	}

	log.Printf("WARN [service.BlogService] store read failed, serving snapshot: %v", err)
	for _, p := range content.BlogPosts() {
		if p.Slug == slug {
			return p, storeWarning(err), nil
		}
	}
	return nil, "", domain.ErrNotFound
}

// Create stores a new post. A missing slug is derived from the title; if
// that slug is already taken, a short random suffix is appended rather than
// failing the create.
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if _, err := s.repo.GetBySlug(ctx, post.Slug); err == nil {
		post.Slug = post.Slug + "-" + uuid.NewString()[:8]
	}
	return s.repo.Create(ctx, post)
}

func (s *BlogService) Update(ctx context.Context, post *domain.BlogPost) error {
	return s.repo.Update(ctx, post)
}

func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ReorderItem is one entry of a batch series reorder. A nil Order clears
// the stored value.
type ReorderItem struct {
	ID    int64
	Order *int
}

// Reorder applies series-order updates one at a time in input order. The
// batch is best effort: a failure stops processing but does not roll back
// items already applied. Entries without an id are skipped.
func (s *BlogService) Reorder(ctx context.Context, items []ReorderItem) error {
	for _, item := range items {
		if item.ID == 0 {
			continue
		}
		if err := s.repo.UpdateSeriesOrder(ctx, item.ID, item.Order); err != nil {
			return err
		}
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return slug
}
