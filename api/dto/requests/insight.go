// ABOUTME: Request DTOs for insight API endpoints
// ABOUTME: An insight is requested either for a known article or for raw HTML

package requests

// InsightRequest asks for an AI micro-lesson. Exactly one field should be set;
// ArticleID wins when both are present.
type InsightRequest struct {
	// ArticleID is the id (source URL) of an article in the current list
	ArticleID string `json:"articleId,omitempty" example:"https://thebiblicalman.substack.com/p/the-weight-of-headship" doc:"Id of an article in the current list"`

	// HTML is arbitrary article HTML, truncated before submission
	HTML string `json:"html,omitempty" maxLength:"200000" doc:"Raw article HTML"`
}
