package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/service"
	"gorm.io/datatypes"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CourseInput is the admin create/update payload. Unknown fields are
// rejected at the boundary; PUT replaces every mutable field with what is
// given here.
type CourseInput struct {
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Instructor       string                `json:"instructor"`
	InstructorBio    string                `json:"instructorBio"`
	Level            string                `json:"level"`
	Duration         string                `json:"duration"`
	Price            string                `json:"price"`
	Category         string                `json:"category"`
	Rating           *float64              `json:"rating"`
	StudentsEnrolled string                `json:"studentsEnrolled"`
	FeaturedImage    string                `json:"featuredImage"`
	Featured         bool                  `json:"featured"`
	IsExternal       bool                  `json:"isExternal"`
	ExternalURL      string                `json:"externalUrl"`
	Modules          []domain.CourseModule `json:"modules"`
	LearningOutcomes []string              `json:"learningOutcomes"`
}

func (in *CourseInput) toDomain(id int64) *domain.Course {
	return &domain.Course{
		ID:               id,
		Name:             in.Name,
		Description:      in.Description,
		Instructor:       in.Instructor,
		InstructorBio:    in.InstructorBio,
		Level:            in.Level,
		Duration:         in.Duration,
		Price:            in.Price,
		Category:         in.Category,
		Rating:           in.Rating,
		StudentsEnrolled: in.StudentsEnrolled,
		FeaturedImage:    in.FeaturedImage,
		Featured:         in.Featured,
		IsExternal:       in.IsExternal,
		ExternalURL:      in.ExternalURL,
		Modules:          datatypes.NewJSONSlice(in.Modules),
		LearningOutcomes: datatypes.NewJSONSlice(in.LearningOutcomes),
	}
}

// Public serves GET /api/public/courses[?id=]. Store failures never surface
// here; the service answers from the bundled snapshot with a warning.
func (h *CourseHandler) Public(w http.ResponseWriter, r *http.Request) {
	if idParam := r.URL.Query().Get("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid id")
			return
		}

		course, warning, err := h.courseService.GetPublic(r.Context(), id)
		if err != nil {
			respondError(w, http.StatusNotFound, "Course not found")
			return
		}

		resp := map[string]interface{}{"course": course}
		if warning != "" {
			resp["warning"] = warning
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	courses, warning, err := h.courseService.ListPublic(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	resp := map[string]interface{}{"courses": courses}
	if warning != "" {
		resp["warning"] = warning
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCourseInput(w, r)
	if !ok {
		return
	}

	course := input.toDomain(0)
	if err := h.courseService.Create(r.Context(), course); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "course": course})
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	input, ok := decodeCourseInput(w, r)
	if !ok {
		return
	}

	course := input.toDomain(id)
	if err := h.courseService.Update(r.Context(), course); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Course not found")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "course": course})
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := h.courseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Course not found")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func decodeCourseInput(w http.ResponseWriter, r *http.Request) (*CourseInput, bool) {
	var input CourseInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if input.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return nil, false
	}
	return &input, true
}

// requireID reads the ?id= query parameter mandatory for PUT and DELETE.
func requireID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		respondError(w, http.StatusBadRequest, "Missing id")
		return 0, false
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
