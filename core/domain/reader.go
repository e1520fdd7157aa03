// ABOUTME: Domain models for the reader panel and the "read more" source view
// ABOUTME: ReaderState is the observable snapshot of one reader session

package domain

// ReaderState is a point-in-time snapshot of the reader panel
type ReaderState struct {
	// Open is false while the panel is closed
	Open bool `json:"open"`

	// Article is the selected article while open
	Article *Article `json:"article,omitempty"`

	// ContentHTML is the HTML handed to the renderer for the open article
	ContentHTML string `json:"contentHtml,omitempty"`

	// ScrollLocked mirrors the background scroll lock held while open
	ScrollLocked bool `json:"scrollLocked"`

	// InsightStatus tracks the async insight request for the open article
	InsightStatus InsightStatus `json:"insightStatus"`

	// Insight is set once InsightStatus is ready
	Insight *Insight `json:"insight,omitempty"`

	// Message carries the static unavailability text when the insight failed
	Message string `json:"message,omitempty"`
}

// SourceView represents extracted content of the original post page
type SourceView struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Content     string `json:"content"`     // HTML content
	Markdown    string `json:"markdown"`    // Markdown content
	TextContent string `json:"textContent"` // Plain text content
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}
