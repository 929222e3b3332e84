package domain

import (
	"testing"
)

func testCourses() []Item {
	rating := 4.8
	return []Item{
		{
			ID:          1,
			Type:        TypeCourse,
			Title:       "JavaScript for Beginners",
			Description: "Learn the fundamentals of JavaScript programming from scratch.",
			Category:    "programming",
			Level:       "beginner",
			Provider:    "FreeCodeCamp",
			Rating:      &rating,
			Skills:      []string{"JavaScript", "ES6", "DOM"},
		},
		{
			ID:          2,
			Type:        TypeCourse,
			Title:       "UI/UX Design Fundamentals",
			Description: "Master the principles of user interface and user experience design.",
			Category:    "design",
			Level:       "beginner",
			Provider:    "Google Design",
		},
		{
			ID:          3,
			Type:        TypeCourse,
			Title:       "Digital Marketing Basics",
			Description: "Learn essential digital marketing strategies.",
			Category:    "marketing",
			Level:       "intermediate",
			Provider:    "Google Digital Garage",
		},
	}
}

func testInternships() []Item {
	return []Item{
		{
			ID:           101,
			Type:         TypeInternship,
			Title:        "Frontend Developer Intern",
			Description:  "Work with our development team on cutting-edge applications.",
			Category:     "programming",
			Level:        "intermediate",
			Company:      "TechStart Inc",
			Location:     "Remote",
			Requirements: []string{"React", "CSS"},
		},
		{
			ID:          102,
			Type:        TypeInternship,
			Title:       "UX Design Intern",
			Description: "Join our design team to create user-centered digital experiences.",
			Category:    "design",
			Level:       "beginner",
			Company:     "Design Co",
			Location:    "New York, NY",
		},
	}
}

func itemIDs(items []Item) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	courses := testCourses()
	result := Search(courses, NewQuery("", "", ""))

	if len(result) != len(courses) {
		t.Fatalf("Search() with empty query returned %d items, want %d", len(result), len(courses))
	}
	for i := range courses {
		if result[i].ID != courses[i].ID {
			t.Errorf("Search() changed order at %d: got id %d, want %d", i, result[i].ID, courses[i].ID)
		}
	}
}

func TestSearchWhitespaceOnlyTextMatchesAll(t *testing.T) {
	courses := testCourses()
	result := Search(courses, NewQuery("   ", "", ""))
	if len(result) != len(courses) {
		t.Errorf("Search() with whitespace text returned %d items, want %d", len(result), len(courses))
	}
}

func TestSearchTextPredicate(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		text    string
		wantIDs []int
	}{
		{
			name:    "title substring case insensitive",
			items:   testCourses(),
			text:    "JAVASCRIPT",
			wantIDs: []int{1},
		},
		{
			name:    "description substring",
			items:   testCourses(),
			text:    "user interface",
			wantIDs: []int{2},
		},
		{
			name:    "provider match",
			items:   testCourses(),
			text:    "freecodecamp",
			wantIDs: []int{1},
		},
		{
			name:    "company match",
			items:   testInternships(),
			text:    "techstart",
			wantIDs: []int{101},
		},
		{
			name:    "location match",
			items:   testInternships(),
			text:    "new york",
			wantIDs: []int{102},
		},
		{
			name:    "requirements element case insensitive",
			items:   testInternships(),
			text:    "react",
			wantIDs: []int{101},
		},
		{
			name:    "skills element match",
			items:   testCourses(),
			text:    "dom",
			wantIDs: []int{1},
		},
		{
			name:    "surrounding whitespace trimmed",
			items:   testCourses(),
			text:    "  marketing  ",
			wantIDs: []int{3},
		},
		{
			name:    "no match",
			items:   testCourses(),
			text:    "blockchain",
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Search(tt.items, NewQuery(tt.text, "", ""))
			gotIDs := itemIDs(result)
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) = %v, want %v", tt.text, gotIDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("Search(%q) = %v, want %v", tt.text, gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestSearchCategoryPredicate(t *testing.T) {
	result := Search(testCourses(), NewQuery("", "design", ""))
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("Search() category=design = %v, want [2]", itemIDs(result))
	}

	// Exact match is case-sensitive: filters come from a controlled set.
	result = Search(testCourses(), NewQuery("", "Design", ""))
	if len(result) != 0 {
		t.Errorf("Search() category=Design should match nothing, got %v", itemIDs(result))
	}
}

func TestSearchLevelPredicate(t *testing.T) {
	result := Search(testCourses(), NewQuery("", "", "intermediate"))
	if len(result) != 1 || result[0].ID != 3 {
		t.Errorf("Search() level=intermediate = %v, want [3]", itemIDs(result))
	}
}

func TestSearchConjunction(t *testing.T) {
	// Text matches 1 and 3 ("Learn"), category narrows to 1.
	result := Search(testCourses(), NewQuery("learn", "programming", "beginner"))
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("Search() conjunctive = %v, want [1]", itemIDs(result))
	}

	// Each predicate alone matches something, together nothing.
	result = Search(testCourses(), NewQuery("marketing", "design", ""))
	if len(result) != 0 {
		t.Errorf("Search() disjoint predicates = %v, want empty", itemIDs(result))
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	// "design" appears in the text of items 2 and 102's fields; use a
	// mixed slice and check relative order survives filtering.
	items := append(testCourses(), testInternships()...)
	result := Search(items, NewQuery("design", "", ""))

	gotIDs := itemIDs(result)
	last := -1
	for _, id := range gotIDs {
		idx := -1
		for i, item := range items {
			if item.ID == id {
				idx = i
				break
			}
		}
		if idx <= last {
			t.Fatalf("Search() broke input order: %v", gotIDs)
		}
		last = idx
	}
}

func TestMatchesNilSkillsAndRequirements(t *testing.T) {
	item := Item{ID: 7, Title: "Plain", Description: "no lists here"}
	// Must not fault, must simply not match on the list predicate.
	if Matches(item, NewQuery("react", "", "")) {
		t.Error("Matches() with nil lists should not match unrelated text")
	}
	if !Matches(item, NewQuery("plain", "", "")) {
		t.Error("Matches() should still match title with nil lists")
	}
}
