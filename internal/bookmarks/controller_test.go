package bookmarks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillbridge/directory/internal/catalog"
	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/logger"
	"github.com/skillbridge/directory/internal/store"
)

func testCatalog() *catalog.Store {
	cat := catalog.NewStore()
	cat.Replace(domain.Catalog{
		Courses: []domain.Item{
			{ID: 1, Type: domain.TypeCourse, Title: "JavaScript for Beginners", Category: "programming", Level: "beginner"},
			{ID: 2, Type: domain.TypeCourse, Title: "UI/UX Design Fundamentals", Category: "design", Level: "beginner"},
		},
		Internships: []domain.Item{
			{ID: 101, Type: domain.TypeInternship, Title: "Frontend Developer Intern", Requirements: []string{"React", "CSS"}},
		},
	})
	return cat
}

func newTestController(st store.BookmarkStore) *Controller {
	return NewController(st, testCatalog(), logger.New("error", false))
}

func TestToggleAddThenRemove(t *testing.T) {
	st := store.NewMemory()
	c := newTestController(st)
	ctx := context.Background()

	result, err := c.Toggle(ctx, 1, domain.TypeCourse)
	require.NoError(t, err)
	require.True(t, result.Added)
	require.True(t, result.Persisted)
	require.NotNil(t, result.Entry)
	require.Equal(t, "JavaScript for Beginners", result.Entry.Title)
	require.NotEmpty(t, result.Entry.SavedDate)
	require.Equal(t, 1, c.Count())

	result, err = c.Toggle(ctx, 1, domain.TypeCourse)
	require.NoError(t, err)
	require.False(t, result.Added)
	require.Nil(t, result.Entry)
	require.Equal(t, 0, c.Count())

	// Removal was persisted too: a fresh load sees an empty set.
	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestToggleMembershipIdempotence(t *testing.T) {
	c := newTestController(store.NewMemory())
	ctx := context.Background()

	// Toggling twice returns the set to its original membership. The
	// savedDate of a removed-and-readded entry changes, so this is
	// membership idempotence, not byte-identical idempotence.
	_, err := c.Toggle(ctx, 101, domain.TypeInternship)
	require.NoError(t, err)
	_, err = c.Toggle(ctx, 101, domain.TypeInternship)
	require.NoError(t, err)

	require.Equal(t, 0, c.Count())
	require.False(t, c.Contains(101, domain.TypeInternship))
}

func TestToggleUniqueness(t *testing.T) {
	c := newTestController(store.NewMemory())
	ctx := context.Background()

	// Any sequence of toggles keeps at most one entry per pair.
	for i := 0; i < 5; i++ {
		_, err := c.Toggle(ctx, 2, domain.TypeCourse)
		require.NoError(t, err)
	}

	require.Equal(t, 1, c.Count(), "odd number of toggles leaves exactly one entry")
	require.True(t, c.Contains(2, domain.TypeCourse))
}

func TestToggleUnknownItemIsNoOp(t *testing.T) {
	st := store.NewMemory()
	c := newTestController(st)
	ctx := context.Background()

	_, err := c.Toggle(ctx, 999, domain.TypeCourse)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
	require.Equal(t, 0, c.Count())

	// Same id exists as a course but not as an internship.
	_, err = c.Toggle(ctx, 1, domain.TypeInternship)
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	// No persist happened for no-ops.
	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestTogglePersistFailureKeepsMemoryState(t *testing.T) {
	st := store.NewMemory()
	st.FailPersist = true
	c := newTestController(st)

	result, err := c.Toggle(context.Background(), 1, domain.TypeCourse)
	require.NoError(t, err, "persist failure must not abort the toggle")
	require.True(t, result.Added)
	require.False(t, result.Persisted)

	// The toggle still reflects in memory for the rest of the session.
	require.True(t, c.Contains(1, domain.TypeCourse))
}

func TestToggleSnapshotsItemFields(t *testing.T) {
	c := newTestController(store.NewMemory())
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	result, err := c.Toggle(context.Background(), 2, domain.TypeCourse)
	require.NoError(t, err)
	require.Equal(t, "2026-08-30T12:00:00Z", result.Entry.SavedDate)
	require.Equal(t, domain.TypeCourse, result.Entry.Type)
	require.Equal(t, "UI/UX Design Fundamentals", result.Entry.Title)
}

func TestLoadDegradesOnStoreError(t *testing.T) {
	c := NewController(failingStore{}, testCatalog(), logger.New("error", false))
	c.Load(context.Background())

	require.Equal(t, 0, c.Count(), "corrupt persisted state degrades to an empty set")
}

func TestLoadHydratesSet(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Persist(ctx, []domain.BookmarkEntry{
		domain.NewBookmarkEntry(domain.Item{ID: 1, Type: domain.TypeCourse, Title: "saved"}, time.Now()),
	}))

	c := NewController(st, testCatalog(), logger.New("error", false))
	c.Load(ctx)

	require.Equal(t, 1, c.Count())
	require.True(t, c.Contains(1, domain.TypeCourse))
}

type failingStore struct{}

func (failingStore) Load(context.Context) ([]domain.BookmarkEntry, error) {
	return nil, errors.New("corrupt payload")
}

func (failingStore) Persist(context.Context, []domain.BookmarkEntry) error {
	return nil
}
