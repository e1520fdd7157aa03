// ABOUTME: Response DTOs for article endpoints
// ABOUTME: Mirrors the Article record in camelCase JSON for the rendering layer

package responses

import "time"

// ArticleResponse represents one article
type ArticleResponse struct {
	ID              string     `json:"id" doc:"Canonical URL of the post"`
	Title           string     `json:"title" doc:"Plain-text title"`
	Excerpt         string     `json:"excerpt" doc:"Plain-text excerpt ending in an ellipsis"`
	PublishedDate   string     `json:"publishedDate" example:"Mar 3, 2025" doc:"Display date or \"Recent\""`
	PublishedAt     *time.Time `json:"publishedAt,omitempty" doc:"Parsed publication time when known"`
	ReadTimeMinutes int        `json:"readTimeMinutes" minimum:"1" doc:"Estimated reading time"`
	Category        string     `json:"category" doc:"Category label"`
	FullContentHTML string     `json:"fullContentHtml,omitempty" doc:"Full HTML body"`
	SourceLink      string     `json:"sourceLink" doc:"External URL for read more"`
}

// ArticleListResponse is the current list held by the content store
type ArticleListResponse struct {
	Articles  []ArticleResponse `json:"articles" doc:"Current articles, at most three"`
	Refreshed bool              `json:"refreshed" doc:"False while the fallback set is shown"`
}
