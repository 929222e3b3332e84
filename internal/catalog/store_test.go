package catalog

import (
	"sync"
	"testing"

	"github.com/skillbridge/directory/internal/domain"
)

func TestNewStoreStartsLoading(t *testing.T) {
	store := NewStore()
	if store.State() != StateLoading {
		t.Errorf("NewStore() state = %v, want loading", store.State())
	}
	if store.Ready() {
		t.Error("NewStore() should not be ready before Replace()")
	}
}

func TestReplaceSwapsBothCollectionsTogether(t *testing.T) {
	store := NewStore()

	store.Replace(domain.Catalog{
		Courses:     []domain.Item{{ID: 1, Type: domain.TypeCourse}},
		Internships: []domain.Item{{ID: 101, Type: domain.TypeInternship}},
	})

	if !store.Ready() {
		t.Fatal("Replace() should mark the store ready")
	}
	courses, internships := store.Counts()
	if courses != 1 || internships != 1 {
		t.Errorf("Counts() = (%d, %d), want (1, 1)", courses, internships)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	store := NewStore()
	store.Replace(domain.Catalog{
		Courses: []domain.Item{{ID: 1}, {ID: 2}},
	})
	store.Replace(domain.Catalog{
		Courses: []domain.Item{{ID: 3}},
	})

	courses := store.Courses()
	if len(courses) != 1 || courses[0].ID != 3 {
		t.Errorf("Replace() should overwrite, got %d courses", len(courses))
	}
}

func TestLookup(t *testing.T) {
	store := NewStore()
	store.Replace(domain.Catalog{
		Courses:     []domain.Item{{ID: 1, Type: domain.TypeCourse}},
		Internships: []domain.Item{{ID: 101, Type: domain.TypeInternship}},
	})

	if _, ok := store.Lookup(101, domain.TypeInternship); !ok {
		t.Error("Lookup() missed an existing internship")
	}
	if _, ok := store.Lookup(101, domain.TypeCourse); ok {
		t.Error("Lookup() must not match across variants")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()
	store.Replace(domain.Catalog{
		Courses: []domain.Item{{ID: 1}},
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Courses()
			_, _ = store.Lookup(1, domain.TypeCourse)
		}()
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Replace(domain.Catalog{Courses: []domain.Item{{ID: 1}}})
		}()
	}
	wg.Wait()
}
