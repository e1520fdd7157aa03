// ABOUTME: Article domain model represents one normalized feed post
// ABOUTME: Provides validation to ensure an article can be listed and opened

package domain

import "time"

const (
	// DefaultCategory is used when the feed item carries no category
	DefaultCategory = "Essay"

	// RecentDate is shown when the item's publication date cannot be parsed
	RecentDate = "Recent"
)

// Article represents a single post as shown in the list and reader
type Article struct {
	// ID is the canonical URL of the source post
	ID string `json:"id" yaml:"id"`

	// Title is the plain-text headline
	Title string `json:"title" yaml:"title"`

	// Excerpt is the truncated plain-text description, always ending in "..."
	Excerpt string `json:"excerpt" yaml:"excerpt"`

	// PublishedDate is either "Jan 2, 2006" formatted or RecentDate
	PublishedDate string `json:"publishedDate" yaml:"published_date"`

	// PublishedAt is the parsed publication time when known
	PublishedAt *time.Time `json:"publishedAt,omitempty" yaml:"-"`

	// ReadTimeMinutes is the estimated reading time, never below 1
	ReadTimeMinutes int `json:"readTimeMinutes" yaml:"read_time_minutes"`

	// Category is the item's first category or DefaultCategory
	Category string `json:"category" yaml:"category"`

	// FullContentHTML is the raw HTML body as delivered by the feed
	FullContentHTML string `json:"fullContentHtml" yaml:"full_content_html"`

	// SourceLink is the external URL used for "read more"
	SourceLink string `json:"sourceLink" yaml:"source_link"`
}

// IsValid checks if the article has all required fields
func (a *Article) IsValid() bool {
	if a.ID == "" || a.Title == "" {
		return false
	}
	return a.ReadTimeMinutes >= 1
}

// CloneArticles returns a shallow copy of the slice so callers cannot
// mutate a held list.
func CloneArticles(articles []Article) []Article {
	if articles == nil {
		return nil
	}
	out := make([]Article, len(articles))
	copy(out, articles)
	return out
}
