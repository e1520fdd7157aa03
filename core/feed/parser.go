// ABOUTME: Feed parser converts raw RSS/Atom XML into normalized articles
// ABOUTME: Computes excerpt, read time, display date and category for the first items

package feed

import (
	"strings"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	htmlutil "biblicalman-api/pkg/utils/html"
	"biblicalman-api/pkg/utils/text"
	timeutil "biblicalman-api/pkg/utils/time"
	"github.com/mmcdole/gofeed"
)

const (
	// DefaultMaxArticles is how many leading feed items are kept
	DefaultMaxArticles = 3

	// ExcerptLength is the number of plain-text characters kept in an excerpt
	ExcerptLength = 150

	// WordsPerMinute is the reading speed used for read time estimates
	WordsPerMinute = 200
)

// Parser turns feed documents into articles
type Parser struct {
	maxArticles int
}

// NewParser creates a parser that keeps at most maxArticles items.
// Non-positive values use DefaultMaxArticles.
func NewParser(maxArticles int) *Parser {
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}
	return &Parser{maxArticles: maxArticles}
}

// Parse converts raw XML into at most maxArticles articles in document order.
// A malformed or empty document yields an empty slice; the error is
// informational and never accompanies a partial result.
func (p *Parser) Parse(raw string) ([]domain.Article, error) {
	if strings.TrimSpace(raw) == "" {
		return []domain.Article{}, &coreerrors.ParseError{Source: "feed", Message: "empty document"}
	}

	parsed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return []domain.Article{}, &coreerrors.ParseError{Source: "feed", Message: err.Error()}
	}

	items := parsed.Items
	if len(items) > p.maxArticles {
		items = items[:p.maxArticles]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		article := convertItem(item)
		if !article.IsValid() {
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// convertItem derives an article from one feed item
func convertItem(item *gofeed.Item) domain.Article {
	// content:encoded wins over description for the full body
	full := item.Content
	if full == "" {
		full = item.Description
	}

	article := domain.Article{
		ID:              item.Link,
		Title:           htmlutil.StripCDATA(item.Title),
		Excerpt:         text.Excerpt(htmlutil.PlainText(item.Description), ExcerptLength),
		ReadTimeMinutes: ReadTimeMinutes(full),
		Category:        category(item.Categories),
		FullContentHTML: full,
		SourceLink:      item.Link,
	}

	if item.PublishedParsed != nil {
		published := *item.PublishedParsed
		article.PublishedAt = &published
	} else if t := timeutil.ParseFlexibleTime(item.Published); !t.IsZero() {
		article.PublishedAt = &t
	}

	if article.PublishedAt != nil {
		article.PublishedDate = timeutil.FormatDisplay(*article.PublishedAt, domain.RecentDate)
	} else {
		article.PublishedDate = domain.RecentDate
	}

	return article
}

// ReadTimeMinutes estimates reading time of an HTML body, never below one minute
func ReadTimeMinutes(fullHTML string) int {
	words := htmlutil.WordCount(fullHTML)
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func category(categories []string) string {
	for _, c := range categories {
		if c = htmlutil.StripCDATA(c); c != "" {
			return c
		}
	}
	return domain.DefaultCategory
}
