package directory

import "github.com/skillbridge/directory/internal/domain"

// Built-in minimal dataset used when a source fetch fails or yields
// malformed data. The directory must always render something, so this
// is the floor: three courses and two internships.

func float64Ptr(v float64) *float64 { return &v }

// FallbackCourses returns the built-in course dataset.
func FallbackCourses() []domain.Item {
	return []domain.Item{
		{
			ID:          1,
			Type:        domain.TypeCourse,
			Title:       "JavaScript for Beginners",
			Description: "Learn the fundamentals of JavaScript programming from scratch. Perfect for complete beginners.",
			Category:    "programming",
			Level:       "beginner",
			Provider:    "FreeCodeCamp",
			Duration:    "6 weeks",
			Rating:      float64Ptr(4.8),
			URL:         "https://freecodecamp.org/javascript",
			Icon:        "💻",
		},
		{
			ID:          2,
			Type:        domain.TypeCourse,
			Title:       "UI/UX Design Fundamentals",
			Description: "Master the principles of user interface and user experience design.",
			Category:    "design",
			Level:       "beginner",
			Provider:    "Google Design",
			Duration:    "4 weeks",
			Rating:      float64Ptr(4.6),
			URL:         "https://design.google",
			Icon:        "🎨",
		},
		{
			ID:          3,
			Type:        domain.TypeCourse,
			Title:       "Digital Marketing Basics",
			Description: "Learn essential digital marketing strategies and tools for modern businesses.",
			Category:    "marketing",
			Level:       "beginner",
			Provider:    "Google Digital Garage",
			Duration:    "3 weeks",
			Rating:      float64Ptr(4.5),
			URL:         "https://learndigital.withgoogle.com",
			Icon:        "📱",
		},
	}
}

// FallbackInternships returns the built-in internship dataset.
func FallbackInternships() []domain.Item {
	return []domain.Item{
		{
			ID:          101,
			Type:        domain.TypeInternship,
			Title:       "Frontend Developer Intern",
			Description: "Work with our development team on cutting-edge React applications.",
			Category:    "programming",
			Level:       "intermediate",
			Company:     "TechStart Inc",
			Location:    "Remote",
			Duration:    "3 months",
			Paid:        true,
			URL:         "https://techstart.com/careers",
			Icon:        "💻",
		},
		{
			ID:          102,
			Type:        domain.TypeInternship,
			Title:       "UX Design Intern",
			Description: "Join our design team to create user-centered digital experiences.",
			Category:    "design",
			Level:       "beginner",
			Company:     "Design Co",
			Location:    "New York, NY",
			Duration:    "4 months",
			Paid:        true,
			URL:         "https://designco.com/internships",
			Icon:        "🎨",
		},
	}
}
