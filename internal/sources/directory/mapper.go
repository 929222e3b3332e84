package directory

import (
	"fmt"

	"github.com/skillbridge/directory/internal/domain"
)

// Mapper converts source records to domain items.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCourses converts a parsed courses document to domain items,
// preserving document order. Records without an id or title are
// skipped. An empty result is treated as malformed data.
func (m *Mapper) MapCourses(doc coursesDocument) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(doc.Courses))
	for _, rec := range doc.Courses {
		if rec.ID == 0 || rec.Title == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:          rec.ID,
			Type:        domain.TypeCourse,
			Title:       rec.Title,
			Description: rec.Description,
			Category:    rec.Category,
			Level:       rec.Level,
			URL:         rec.URL,
			Icon:        rec.Icon,
			Duration:    rec.Duration,
			Provider:    rec.Provider,
			Rating:      rec.Rating,
			Skills:      rec.Skills,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid courses found in source document")
	}
	return items, nil
}

// MapInternships converts a parsed internships document to domain
// items, preserving document order.
func (m *Mapper) MapInternships(doc internshipsDocument) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(doc.Internships))
	for _, rec := range doc.Internships {
		if rec.ID == 0 || rec.Title == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:           rec.ID,
			Type:         domain.TypeInternship,
			Title:        rec.Title,
			Description:  rec.Description,
			Category:     rec.Category,
			Level:        rec.Level,
			URL:          rec.URL,
			Icon:         rec.Icon,
			Duration:     rec.Duration,
			Company:      rec.Company,
			Location:     rec.Location,
			Paid:         rec.Paid,
			Salary:       rec.Salary,
			Requirements: rec.Requirements,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid internships found in source document")
	}
	return items, nil
}
