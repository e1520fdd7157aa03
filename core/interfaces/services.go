// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts the API layer and the reader depend on

package interfaces

import (
	"context"

	"biblicalman-api/core/domain"
)

// ArticleStore exposes the current authoritative article list
type ArticleStore interface {
	// Articles returns a copy of the current list
	Articles() []domain.Article

	// Get looks up one article by id
	Get(id string) (domain.Article, error)

	// Refreshed reports whether the fallback set has been replaced
	Refreshed() bool

	// Version is 0 while the fallback set is held and 1 after replacement
	Version() int
}

// InsightGenerator produces an AI micro-lesson for an article
type InsightGenerator interface {
	Generate(ctx context.Context, article domain.Article) (domain.Insight, error)
}

// InsightService also accepts raw HTML that is not part of the article list
type InsightService interface {
	InsightGenerator
	GenerateFromHTML(ctx context.Context, contentHTML string) (domain.Insight, error)
}

// SourceExtractor extracts a clean reading view from an article's source page
type SourceExtractor interface {
	Extract(ctx context.Context, sourceURL string) domain.SourceView
}
