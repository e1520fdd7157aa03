// ABOUTME: Source extractor builds the "read more" view of an article's original page
// ABOUTME: Fetches through the shared HTTP client, then go-readability and html-to-markdown

package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"biblicalman-api/core/domain"
	"biblicalman-api/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

const (
	sourceCacheTTL = time.Hour

	StatusOK    = "ok"
	StatusError = "error"
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	trailingSpace  = regexp.MustCompile(`[ \t]+\n`)
	headingSpacing = regexp.MustCompile(`\n(#{1,6} )`)
)

// SourceExtractor implements interfaces.SourceExtractor
type SourceExtractor struct {
	client interfaces.HTTPClient
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewSourceExtractor creates an extractor using the shared dependencies
func NewSourceExtractor(deps interfaces.Dependencies) *SourceExtractor {
	return &SourceExtractor{
		client: deps.HTTPClient,
		cache:  deps.Cache,
		logger: interfaces.LoggerOrNop(deps.Logger),
	}
}

// Extract returns the readable content of sourceURL. Failures are reported in
// the view's Status and Error fields, never as a Go error.
func (e *SourceExtractor) Extract(ctx context.Context, sourceURL string) domain.SourceView {
	cacheKey := "source:" + sourceURL
	if e.cache != nil {
		if data, err := e.cache.Get(ctx, cacheKey); err == nil {
			var cached domain.SourceView
			if json.Unmarshal(data, &cached) == nil {
				return cached
			}
		}
	}

	view := e.extract(ctx, sourceURL)

	if e.cache != nil && view.Status == StatusOK {
		if data, err := json.Marshal(view); err == nil {
			_ = e.cache.Set(ctx, cacheKey, data, sourceCacheTTL)
		}
	}
	return view
}

func (e *SourceExtractor) extract(ctx context.Context, sourceURL string) domain.SourceView {
	view := domain.SourceView{URL: sourceURL, Status: StatusOK}

	fail := func(err error) domain.SourceView {
		e.logger.Warn("Failed to extract source view", map[string]interface{}{
			"url":   sourceURL,
			"error": err.Error(),
		})
		view.Status = StatusError
		view.Error = err.Error()
		return view
	}

	pageURL, err := url.Parse(sourceURL)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return fail(fmt.Errorf("invalid URL format"))
	}
	if e.client == nil {
		return fail(fmt.Errorf("HTTP client not configured"))
	}

	resp, err := e.client.Get(ctx, sourceURL)
	if err != nil {
		return fail(err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return fail(fmt.Errorf("source returned status %d", resp.StatusCode()))
	}

	article, err := readability.FromReader(resp.Body(), pageURL)
	if err != nil {
		return fail(err)
	}

	view.Title = article.Title
	view.Byline = article.Byline
	view.Content = article.Content
	view.TextContent = strings.TrimSpace(article.TextContent)
	view.SiteName = article.SiteName
	view.Image = article.Image

	if view.Content != "" {
		converter := md.NewConverter(pageURL.Host, true, nil)
		markdown, err := converter.ConvertString(view.Content)
		if err != nil {
			e.logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   sourceURL,
				"error": err.Error(),
			})
		} else {
			view.Markdown = buildMarkdown(view.Title, view.Byline, view.SiteName, markdown)
		}
	}

	return view
}

// buildMarkdown prefixes the converted body with a title and a metadata line
func buildMarkdown(title, byline, siteName, body string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	var meta []string
	if byline != "" {
		meta = append(meta, "**Author:** "+byline)
	}
	if siteName != "" {
		meta = append(meta, "**Source:** "+siteName)
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | "))
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString(cleanMarkdown(body))
	return b.String()
}

func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = headingSpacing.ReplaceAllString(markdown, "\n\n$1")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
