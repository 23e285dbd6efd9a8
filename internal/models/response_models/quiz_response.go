package response_models

import "time"

type QuizSessionResponse struct {
	SessionID   string           `json:"sessionId"`
	Round       int              `json:"round"`
	TotalRounds int              `json:"totalRounds"`
	Completed   bool             `json:"completed"`
	Pair        []DesignResponse `json:"pair,omitempty"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}
