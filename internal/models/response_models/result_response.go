package response_models

import "thisorthat/internal/preference"

type SavedResultResponse struct {
	ID        string                     `json:"id"`
	SessionID string                     `json:"sessionId,omitempty"`
	Email     string                     `json:"email,omitempty"`
	CreatedAt int64                      `json:"createdAt"`
	Profile   *preference.ResultsProfile `json:"profile"`
}

type FeedbackResponse struct {
	ID        string `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
