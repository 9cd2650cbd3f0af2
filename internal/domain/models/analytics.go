package models

// Analytics summarizes backend-side interaction statistics for one session.
type Analytics struct {
	SessionID          string         `json:"session_id"`
	TotalInteractions  int            `json:"total_interactions"`
	AvgResponseTimeMs  float64        `json:"avg_response_time_ms"`
	IntentDistribution map[string]int `json:"intent_distribution"`
}
