package mappers

import (
	"testing"
	"time"

	"biblicalman-api/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArticleResponse(t *testing.T) {
	published := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	a := domain.Article{
		ID:              "https://example.com/p/1",
		Title:           "One",
		Excerpt:         "Hello...",
		PublishedDate:   "Mar 3, 2025",
		PublishedAt:     &published,
		ReadTimeMinutes: 4,
		Category:        "Essay",
		FullContentHTML: "<p>Body</p>",
		SourceLink:      "https://example.com/p/1",
	}

	full := ToArticleResponse(a, true)
	assert.Equal(t, a.ID, full.ID)
	assert.Equal(t, "Mar 3, 2025", full.PublishedDate)
	assert.Equal(t, &published, full.PublishedAt)
	assert.Equal(t, 4, full.ReadTimeMinutes)
	assert.Equal(t, "<p>Body</p>", full.FullContentHTML)

	summary := ToArticleResponse(a, false)
	assert.Empty(t, summary.FullContentHTML)
	assert.Equal(t, a.Title, summary.Title)
}

func TestToArticleListResponse_Empty(t *testing.T) {
	resp := ToArticleListResponse(nil, false, false)
	assert.NotNil(t, resp.Articles)
	assert.Empty(t, resp.Articles)
}

func TestInsightResponses(t *testing.T) {
	ready := ToInsightResponse(domain.Insight{CorePrinciple: "c", ActionItem: "a", Reflection: "r"})
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "c", ready.CorePrinciple)
	assert.Empty(t, ready.Message)

	unavailable := UnavailableInsightResponse()
	assert.Equal(t, "unavailable", unavailable.Status)
	assert.Equal(t, domain.InsightUnavailableMessage, unavailable.Message)
	assert.Empty(t, unavailable.CorePrinciple)
}

func TestToReaderStateResponse(t *testing.T) {
	closed := ToReaderStateResponse("s1", domain.ReaderState{InsightStatus: domain.InsightIdle})
	assert.Equal(t, "s1", closed.SessionID)
	assert.False(t, closed.Open)
	assert.Nil(t, closed.Article)
	assert.Equal(t, "idle", closed.InsightStatus)

	article := domain.Article{ID: "a", Title: "A", FullContentHTML: "<p>raw</p>", ReadTimeMinutes: 1}
	insight := domain.Insight{CorePrinciple: "c", ActionItem: "a", Reflection: "r"}
	open := ToReaderStateResponse("s1", domain.ReaderState{
		Open:          true,
		Article:       &article,
		ContentHTML:   "<p>raw</p>",
		ScrollLocked:  true,
		InsightStatus: domain.InsightReady,
		Insight:       &insight,
	})
	require.NotNil(t, open.Article)
	assert.Equal(t, "a", open.Article.ID)
	assert.Empty(t, open.Article.FullContentHTML)
	assert.Equal(t, "<p>raw</p>", open.ContentHTML)
	assert.True(t, open.ScrollLocked)
	require.NotNil(t, open.Insight)
	assert.Equal(t, "c", open.Insight.CorePrinciple)
}

func TestToSourceViewResponse(t *testing.T) {
	v := domain.SourceView{URL: "u", Title: "T", Status: "error", Error: "boom"}
	resp := ToSourceViewResponse(v)

	assert.Equal(t, "u", resp.URL)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "boom", resp.Error)
}
