package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/service"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogPostInput is the admin create/update payload. The series position is
// exposed as "order" in JSON, matching what the admin panel sends.
type BlogPostInput struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	Author        string `json:"author"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	ReadTime      string `json:"readTime"`
	FeaturedImage string `json:"featuredImage"`
	Featured      bool   `json:"featured"`
	Series        string `json:"series"`
	Order         *int   `json:"order"`
}

func (in *BlogPostInput) toDomain(id int64) *domain.BlogPost {
	return &domain.BlogPost{
		ID:            id,
		Slug:          in.Slug,
		Title:         in.Title,
		Description:   in.Description,
		Content:       in.Content,
		Author:        in.Author,
		Date:          in.Date,
		Category:      in.Category,
		ReadTime:      in.ReadTime,
		FeaturedImage: in.FeaturedImage,
		Featured:      in.Featured,
		Series:        in.Series,
		SeriesOrder:   in.Order,
	}
}

// Public serves GET /api/public/blog-posts[?slug=|id=]. Slug wins when both
// are present.
func (h *BlogHandler) Public(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	idParam := r.URL.Query().Get("id")

	if slug != "" || idParam != "" {
		var (
			post    *domain.BlogPost
			warning string
			err     error
		)
		if slug != "" {
			post, warning, err = h.blogService.GetPublicBySlug(r.Context(), slug)
		} else {
			var id int64
			id, err = strconv.ParseInt(idParam, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid id")
				return
			}
			post, warning, err = h.blogService.GetPublicByID(r.Context(), id)
		}
		if err != nil {
			respondError(w, http.StatusNotFound, "Blog post not found")
			return
		}

		resp := map[string]interface{}{"post": post}
		if warning != "" {
			resp["warning"] = warning
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	posts, warning, err := h.blogService.ListPublic(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	resp := map[string]interface{}{"posts": posts}
	if warning != "" {
		resp["warning"] = warning
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBlogPostInput(w, r)
	if !ok {
		return
	}

	post := input.toDomain(0)
	if err := h.blogService.Create(r.Context(), post); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "post": post})
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	input, ok := decodeBlogPostInput(w, r)
	if !ok {
		return
	}

	post := input.toDomain(id)
	if err := h.blogService.Update(r.Context(), post); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "post": post})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Reorder serves POST /api/admin/blog-order. The admin panel has sent two
// payload shapes over time: a bare array and {"blogOrderList": [...]};
// both are accepted. Items apply sequentially and best effort.
func (h *BlogHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	items, ok := parseReorderPayload(raw)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.blogService.Reorder(r.Context(), items); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type reorderEntry struct {
	ID    json.RawMessage `json:"id"`
	Order json.RawMessage `json:"order"`
}

func parseReorderPayload(raw json.RawMessage) ([]service.ReorderItem, bool) {
	var entries []reorderEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapper struct {
			BlogOrderList []reorderEntry `json:"blogOrderList"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.BlogOrderList == nil {
			return nil, false
		}
		entries = wrapper.BlogOrderList
	}

	items := make([]service.ReorderItem, 0, len(entries))
	for _, entry := range entries {
		id, ok := parseJSONInt(entry.ID)
		if !ok {
			continue
		}
		var order *int
		if value, ok := parseJSONInt(entry.Order); ok {
			intValue := int(value)
			order = &intValue
		}
		items = append(items, service.ReorderItem{ID: id, Order: order})
	}
	return items, true
}

// parseJSONInt accepts a JSON number or a numeric string; anything else is
// treated as absent (a non-numeric order is stored as null).
func parseJSONInt(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return int64(number), true
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if value, err := strconv.ParseFloat(text, 64); err == nil {
			return int64(value), true
		}
	}
	return 0, false
}

func decodeBlogPostInput(w http.ResponseWriter, r *http.Request) (*BlogPostInput, bool) {
	var input BlogPostInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if input.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return nil, false
	}
	return &input, true
}
