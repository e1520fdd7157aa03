package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/workers"
	"github.com/stretchr/testify/require"
)

// mockStore is a mock implementation of the ArticleStore interface
type mockStore struct {
	articles  []domain.Article
	refreshed bool
}

func (m *mockStore) Articles() []domain.Article {
	return domain.CloneArticles(m.articles)
}

func (m *mockStore) Get(id string) (domain.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockStore) Refreshed() bool {
	return m.refreshed
}

func (m *mockStore) Version() int {
	if m.refreshed {
		return 1
	}
	return 0
}

// mockInsightService is a mock implementation of the InsightService interface
type mockInsightService struct {
	generateFunc         func(ctx context.Context, article domain.Article) (domain.Insight, error)
	generateFromHTMLFunc func(ctx context.Context, contentHTML string) (domain.Insight, error)
}

func (m *mockInsightService) Generate(ctx context.Context, article domain.Article) (domain.Insight, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, article)
	}
	return domain.Insight{}, nil
}

func (m *mockInsightService) GenerateFromHTML(ctx context.Context, contentHTML string) (domain.Insight, error) {
	if m.generateFromHTMLFunc != nil {
		return m.generateFromHTMLFunc(ctx, contentHTML)
	}
	return domain.Insight{}, nil
}

// mockExtractor is a mock implementation of the SourceExtractor interface
type mockExtractor struct {
	extractFunc func(ctx context.Context, sourceURL string) domain.SourceView
}

func (m *mockExtractor) Extract(ctx context.Context, sourceURL string) domain.SourceView {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, sourceURL)
	}
	return domain.SourceView{URL: sourceURL, Status: "ok"}
}

// mockSubmitter records insight jobs so tests can complete them
type mockSubmitter struct {
	mu   sync.Mutex
	jobs []*workers.InsightJob
}

func (m *mockSubmitter) Submit(job *workers.InsightJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *mockSubmitter) job(t *testing.T, i int) *workers.InsightJob {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.Greater(t, len(m.jobs), i)
	return m.jobs[i]
}

// mockLogger records warnings
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func testArticles() []domain.Article {
	return []domain.Article{
		{
			ID:              "https://thebiblicalman.substack.com/p/one",
			Title:           "One",
			Excerpt:         "First...",
			PublishedDate:   "Mar 3, 2025",
			ReadTimeMinutes: 2,
			Category:        "Essay",
			FullContentHTML: `<p>One body</p><script>alert(1)</script>`,
			SourceLink:      "https://thebiblicalman.substack.com/p/one",
		},
		{
			ID:              "https://thebiblicalman.substack.com/p/two",
			Title:           "Two",
			Excerpt:         "Second...",
			PublishedDate:   "Recent",
			ReadTimeMinutes: 1,
			Category:        "Leadership",
			FullContentHTML: "<p>Two body</p>",
			SourceLink:      "https://thebiblicalman.substack.com/p/two",
		},
	}
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v))
}
