// ABOUTME: Response DTOs for insight endpoints
// ABOUTME: Failures are reported as status "unavailable" rather than an HTTP error

package responses

// InsightResponse carries an insight or the unavailability message
type InsightResponse struct {
	Status        string `json:"status" enum:"ready,unavailable" doc:"ready or unavailable"`
	CorePrinciple string `json:"corePrinciple,omitempty"`
	ActionItem    string `json:"actionItem,omitempty"`
	Reflection    string `json:"reflection,omitempty"`
	Message       string `json:"message,omitempty" doc:"Shown when status is unavailable"`
}
