package domain

import (
	"sort"
	"time"

	"gorm.io/datatypes"
)

// CourseModule is one section of a course curriculum.
type CourseModule struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Lessons  int    `json:"lessons"`
	Duration string `json:"duration"`
}

type Course struct {
	ID               int64                               `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string                              `json:"name" gorm:"not null"`
	Description      string                              `json:"description"`
	Instructor       string                              `json:"instructor"`
	InstructorBio    string                              `json:"instructorBio"`
	Level            string                              `json:"level"`
	Duration         string                              `json:"duration"`
	Price            string                              `json:"price"`
	Category         string                              `json:"category"`
	Rating           *float64                            `json:"rating"`
	StudentsEnrolled string                              `json:"studentsEnrolled"`
	FeaturedImage    string                              `json:"featuredImage"`
	Featured         bool                                `json:"featured" gorm:"default:false"`
	IsExternal       bool                                `json:"isExternal" gorm:"default:false"`
	ExternalURL      string                              `json:"externalUrl"`
	Modules          datatypes.JSONSlice[CourseModule]   `json:"modules" gorm:"type:jsonb"`
	LearningOutcomes datatypes.JSONSlice[string]         `json:"learningOutcomes" gorm:"type:jsonb"`
	CreatedAt        time.Time                           `json:"createdAt"`
	UpdatedAt        time.Time                           `json:"updatedAt"`
}

// SortCoursesForDisplay orders courses the way the catalog presents them:
// featured first, then by ascending id. Both the live store and the bundled
// snapshot go through this so the two paths render identically.
func SortCoursesForDisplay(courses []*Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Featured != courses[j].Featured {
			return courses[i].Featured
		}
		return courses[i].ID < courses[j].ID
	})
}
