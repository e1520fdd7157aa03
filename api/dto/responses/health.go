package responses

// HealthResponse reports liveness and content store state
type HealthResponse struct {
	Status          string `json:"status" example:"ok"`
	Refreshed       bool   `json:"refreshed" doc:"Whether the fallback set was replaced"`
	StoreVersion    int    `json:"storeVersion" doc:"0 before the first replacement, 1 after"`
	Articles        int    `json:"articles" doc:"Number of articles held"`
	ReaderSessions  int    `json:"readerSessions" doc:"Live reader sessions"`
	InsightsEnabled bool   `json:"insightsEnabled"`
}
