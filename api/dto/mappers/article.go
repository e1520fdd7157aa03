// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps JSON shapes out of the core packages

package mappers

import (
	"biblicalman-api/api/dto/responses"
	"biblicalman-api/core/domain"
)

// ToArticleResponse converts an article. includeContent controls whether the
// full HTML body is sent.
func ToArticleResponse(a domain.Article, includeContent bool) responses.ArticleResponse {
	r := responses.ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Excerpt:         a.Excerpt,
		PublishedDate:   a.PublishedDate,
		PublishedAt:     a.PublishedAt,
		ReadTimeMinutes: a.ReadTimeMinutes,
		Category:        a.Category,
		SourceLink:      a.SourceLink,
	}
	if includeContent {
		r.FullContentHTML = a.FullContentHTML
	}
	return r
}

// ToArticleListResponse converts the store's list
func ToArticleListResponse(articles []domain.Article, refreshed, includeContent bool) responses.ArticleListResponse {
	out := responses.ArticleListResponse{
		Articles:  make([]responses.ArticleResponse, 0, len(articles)),
		Refreshed: refreshed,
	}
	for _, a := range articles {
		out.Articles = append(out.Articles, ToArticleResponse(a, includeContent))
	}
	return out
}

// ToInsightResponse converts a generated insight
func ToInsightResponse(i domain.Insight) responses.InsightResponse {
	return responses.InsightResponse{
		Status:        string(domain.InsightReady),
		CorePrinciple: i.CorePrinciple,
		ActionItem:    i.ActionItem,
		Reflection:    i.Reflection,
	}
}

// UnavailableInsightResponse is returned whenever no insight could be produced
func UnavailableInsightResponse() responses.InsightResponse {
	return responses.InsightResponse{
		Status:  string(domain.InsightUnavailable),
		Message: domain.InsightUnavailableMessage,
	}
}

// ToReaderStateResponse converts a reader snapshot
func ToReaderStateResponse(sessionID string, s domain.ReaderState) responses.ReaderStateResponse {
	r := responses.ReaderStateResponse{
		SessionID:     sessionID,
		Open:          s.Open,
		ContentHTML:   s.ContentHTML,
		ScrollLocked:  s.ScrollLocked,
		InsightStatus: string(s.InsightStatus),
		Message:       s.Message,
	}
	if s.Article != nil {
		// ContentHTML already carries the body to render
		a := ToArticleResponse(*s.Article, false)
		r.Article = &a
	}
	if s.Insight != nil {
		r.Insight = &responses.InsightView{
			CorePrinciple: s.Insight.CorePrinciple,
			ActionItem:    s.Insight.ActionItem,
			Reflection:    s.Insight.Reflection,
		}
	}
	return r
}

// ToSourceViewResponse converts an extracted source page
func ToSourceViewResponse(v domain.SourceView) responses.SourceViewResponse {
	return responses.SourceViewResponse{
		URL:         v.URL,
		Title:       v.Title,
		Byline:      v.Byline,
		Content:     v.Content,
		Markdown:    v.Markdown,
		TextContent: v.TextContent,
		SiteName:    v.SiteName,
		Image:       v.Image,
		Status:      v.Status,
		Error:       v.Error,
	}
}
