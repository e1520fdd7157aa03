// ABOUTME: Fallback article seed shown before the first successful refresh
// ABOUTME: Loads the embedded YAML set or an operator-supplied replacement file

package store

import (
	_ "embed"
	"fmt"
	"os"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/feed"
	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var embeddedFallback []byte

// DefaultFallback returns the embedded fallback set
func DefaultFallback() []domain.Article {
	articles, err := ParseFallback(embeddedFallback)
	if err != nil {
		// The embedded file is part of the build; a failure here is a programming error
		panic(fmt.Sprintf("invalid embedded fallback: %v", err))
	}
	return articles
}

// LoadFallback reads a fallback set from path, or the embedded set when path is empty
func LoadFallback(path string) ([]domain.Article, error) {
	if path == "" {
		return DefaultFallback(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read fallback file")
	}
	return ParseFallback(data)
}

// ParseFallback decodes a YAML list of articles and fills derived fields
// the file may omit (read time, date, category, source link).
func ParseFallback(data []byte) ([]domain.Article, error) {
	var articles []domain.Article
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, &coreerrors.ParseError{Source: "fallback", Message: err.Error()}
	}

	if len(articles) == 0 {
		return nil, &coreerrors.ValidationError{Field: "fallback", Message: "at least one article is required"}
	}
	if len(articles) > feed.DefaultMaxArticles {
		articles = articles[:feed.DefaultMaxArticles]
	}

	for i := range articles {
		a := &articles[i]
		if a.SourceLink == "" {
			a.SourceLink = a.ID
		}
		if a.ReadTimeMinutes < 1 {
			a.ReadTimeMinutes = feed.ReadTimeMinutes(a.FullContentHTML)
		}
		if a.PublishedDate == "" {
			a.PublishedDate = domain.RecentDate
		}
		if a.Category == "" {
			a.Category = domain.DefaultCategory
		}
		if !a.IsValid() {
			return nil, &coreerrors.ValidationError{
				Field:   fmt.Sprintf("fallback[%d]", i),
				Message: "id and title are required",
			}
		}
	}

	return articles, nil
}
