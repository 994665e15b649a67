// Package content holds the bundled snapshot of the course catalog and blog.
// It serves two purposes: first-run seeding of an empty database, and the
// read-through fallback when the database is unreachable. Seed rows carry
// fixed ids so repeated seeding is a no-op.
package content

import (
	"github.com/systemdesignlab/content-api/internal/domain"
	"gorm.io/datatypes"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// Courses returns a fresh copy of the snapshot course catalog. Callers are
// free to sort or filter the result.
func Courses() []*domain.Course {
	return []*domain.Course{
		{
			ID:            9,
			Name:          "System Design Fundamental",
			Description:   "Master system design fundamentals: scalability, load balancing, caching, databases, and distributed systems. Designed for interview prep and real-world architecture thinking.",
			Instructor:    "Anand Rochlani",
			InstructorBio: "System design educator focused on practical architecture, scaling trade-offs, and interview-ready fundamentals.",
			Level:         "Beginner to Advanced",
			Duration:      "Self-paced (Udemy)",
			Price:         "Udemy",
			Category:      "System Design",
			Rating:        floatPtr(4.8),

			StudentsEnrolled: "50K+",
			FeaturedImage:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa",
			Featured:         true,
			IsExternal:       true,
			ExternalURL:      "https://www.udemy.com/course/system-design-fundamental/",
			Modules: datatypes.NewJSONSlice([]domain.CourseModule{
				{ID: 1, Title: "Introduction to System Design", Lessons: 4, Duration: "1 hour"},
				{ID: 2, Title: "Load Balancing & Scaling", Lessons: 6, Duration: "2 hours"},
				{ID: 3, Title: "Database Technologies", Lessons: 8, Duration: "2.5 hours"},
				{ID: 4, Title: "Caching & Content Delivery", Lessons: 5, Duration: "1.5 hours"},
				{ID: 5, Title: "Distributed Systems", Lessons: 7, Duration: "2 hours"},
				{ID: 6, Title: "System Design Interviews", Lessons: 10, Duration: "3 hours"},
			}),
			LearningOutcomes: datatypes.NewJSONSlice([]string{
				"Design scalable, reliable, and maintainable systems",
				"Understand core concepts like load balancing, caching, and partitioning",
				"Analyze and choose appropriate database technologies (SQL vs NoSQL)",
				"Master distributed systems patterns and microservices architecture",
				"Prepare effectively for system design interviews at top tech companies",
			}),
		},
	}
}

// BlogPosts returns a fresh copy of the snapshot blog posts.
func BlogPosts() []*domain.BlogPost {
	return []*domain.BlogPost{
		{
			ID:          1,
			Slug:        "what-is-system-design",
			Title:       "What Is System Design, Really?",
			Description: "A practical introduction to system design: what it covers, why it matters, and how to start thinking in components and trade-offs.",
			Author:      "Anand Rochlani",
			Date:        "2024-03-04",
			Category:    "System Design",
			ReadTime:    "7 min read",
			Featured:    true,
			Series:      "System Design Basics",
			SeriesOrder: intPtr(1),
		},
		{
			ID:          2,
			Slug:        "load-balancers-explained",
			Title:       "Load Balancers Explained",
			Description: "Layer 4 vs layer 7, health checks, and the routing strategies behind every horizontally scaled service.",
			Author:      "Anand Rochlani",
			Date:        "2024-03-18",
			Category:    "System Design",
			ReadTime:    "9 min read",
			Series:      "System Design Basics",
			SeriesOrder: intPtr(2),
		},
		{
			ID:          3,
			Slug:        "caching-strategies-that-scale",
			Title:       "Caching Strategies That Scale",
			Description: "Cache-aside, write-through, and read-through patterns, and how eviction policy choices show up in production incidents.",
			Author:      "Anand Rochlani",
			Date:        "2024-04-01",
			Category:    "System Design",
			ReadTime:    "8 min read",
			Series:      "System Design Basics",
			SeriesOrder: intPtr(3),
		},
		{
			ID:          4,
			Slug:        "how-i-prepare-for-interviews",
			Title:       "How I Prepare for Technical Interviews",
			Description: "A study routine that balances fundamentals, mock interviews, and rest.",
			Author:      "Anand Rochlani",
			Date:        "2024-02-12",
			Category:    "Career",
			ReadTime:    "5 min read",
		},
	}
}
