package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/utils"
)

// maxDocumentSize caps how much of a source document is read. The
// catalogs are a few hundred records at most.
const maxDocumentSize = 4 << 20

// Loader fetches the two catalog source documents. A source is either
// an http(s) URL or a local file path.
type Loader struct {
	coursesSource     string
	internshipsSource string
	client            *http.Client
}

// Result is the outcome of a load. Load never fails outright: a source
// that cannot be fetched or parsed is replaced by the built-in
// fallback dataset, and the error is reported here so the caller can
// log it.
type Result struct {
	Catalog domain.Catalog

	// CoursesErr / InternshipsErr are non-nil when that source fell
	// back to built-in data.
	CoursesErr     error
	InternshipsErr error
}

// FellBack reports whether any source was replaced with fallback data.
func (r Result) FellBack() bool {
	return r.CoursesErr != nil || r.InternshipsErr != nil
}

// NewLoader creates a loader for the two configured sources.
func NewLoader(coursesSource, internshipsSource string, fetchTimeout time.Duration) *Loader {
	return &Loader{
		coursesSource:     coursesSource,
		internshipsSource: internshipsSource,
		client:            &http.Client{Timeout: fetchTimeout},
	}
}

// Load fetches both sources concurrently and joins before returning,
// so the caller always sees both collections at once. The two fetches
// are independent; each falls back on its own.
func (l *Loader) Load(ctx context.Context) Result {
	type outcome struct {
		items []domain.Item
		err   error
	}

	coursesCh := make(chan outcome, 1)
	internshipsCh := make(chan outcome, 1)

	go func() {
		items, err := l.loadCourses(ctx)
		coursesCh <- outcome{items, err}
	}()
	go func() {
		items, err := l.loadInternships(ctx)
		internshipsCh <- outcome{items, err}
	}()

	courses := <-coursesCh
	internships := <-internshipsCh

	result := Result{
		CoursesErr:     courses.err,
		InternshipsErr: internships.err,
	}
	result.Catalog.Courses = courses.items
	result.Catalog.Internships = internships.items

	if courses.err != nil {
		result.Catalog.Courses = FallbackCourses()
	}
	if internships.err != nil {
		result.Catalog.Internships = FallbackInternships()
	}

	return result
}

func (l *Loader) loadCourses(ctx context.Context) ([]domain.Item, error) {
	data, err := l.fetch(ctx, l.coursesSource)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses source: %w", err)
	}

	var doc coursesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse courses json: %w", err)
	}

	return NewMapper().MapCourses(doc)
}

func (l *Loader) loadInternships(ctx context.Context) ([]domain.Item, error) {
	data, err := l.fetch(ctx, l.internshipsSource)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch internships source: %w", err)
	}

	var doc internshipsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse internships json: %w", err)
	}

	return NewMapper().MapInternships(doc)
}

// fetch reads a source document from an http(s) URL or a file path.
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetchHTTP(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
