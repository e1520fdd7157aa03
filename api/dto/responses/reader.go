// ABOUTME: Response DTOs for reader session and source view endpoints
// ABOUTME: Exposes the reader state snapshot and the extracted source page

package responses

// InsightView is the insight shown in the reader panel
type InsightView struct {
	CorePrinciple string `json:"corePrinciple"`
	ActionItem    string `json:"actionItem"`
	Reflection    string `json:"reflection"`
}

// ReaderStateResponse is a snapshot of one reader session
type ReaderStateResponse struct {
	SessionID     string           `json:"sessionId" doc:"Reader session id"`
	Open          bool             `json:"open" doc:"Whether an article is showing"`
	Article       *ArticleResponse `json:"article,omitempty" doc:"The open article"`
	ContentHTML   string           `json:"contentHtml,omitempty" doc:"HTML to render for the open article"`
	ScrollLocked  bool             `json:"scrollLocked" doc:"Background scroll lock"`
	InsightStatus string           `json:"insightStatus" enum:"idle,loading,ready,unavailable"`
	Insight       *InsightView     `json:"insight,omitempty"`
	Message       string           `json:"message,omitempty"`
}

// SourceViewResponse is the extracted "read more" page
type SourceViewResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Content     string `json:"content" doc:"Cleaned HTML"`
	Markdown    string `json:"markdown"`
	TextContent string `json:"textContent"`
	SiteName    string `json:"siteName,omitempty"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status" enum:"ok,error"`
	Error       string `json:"error,omitempty"`
}
