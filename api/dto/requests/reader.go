// ABOUTME: Request DTOs for reader session endpoints
// ABOUTME: Defines the article selection sent when opening the reader

package requests

// OpenReaderRequest selects the article to show in a reader session
type OpenReaderRequest struct {
	ArticleID string `json:"articleId" required:"true" minLength:"1" doc:"Id of the article to open"`
}
