// ABOUTME: Insight domain model holds the AI-generated micro-lesson for an article
// ABOUTME: Also defines the insight lifecycle status shown by the reader

package domain

// Insight is a three-field summary of an article's content
type Insight struct {
	CorePrinciple string `json:"corePrinciple"`
	ActionItem    string `json:"actionItem"`
	Reflection    string `json:"reflection"`
}

// IsComplete reports whether every field was filled in
func (i Insight) IsComplete() bool {
	return i.CorePrinciple != "" && i.ActionItem != "" && i.Reflection != ""
}

// InsightStatus describes where an insight request stands
type InsightStatus string

const (
	InsightIdle        InsightStatus = "idle"
	InsightLoading     InsightStatus = "loading"
	InsightReady       InsightStatus = "ready"
	InsightUnavailable InsightStatus = "unavailable"
)

// InsightUnavailableMessage is the static text shown when no insight could be produced
const InsightUnavailableMessage = "Insights are unavailable for this article right now."
