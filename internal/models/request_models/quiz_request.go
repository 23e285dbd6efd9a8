package request_models

import "thisorthat/internal/preference"

type StartQuizRequest struct {
	// Rounds overrides the configured round count when set.
	Rounds int `json:"rounds" binding:"omitempty,min=1,max=50"`
}

type ChoiceRequest struct {
	SelectedID            string   `json:"selectedId" binding:"required,max=128"`
	TimeToDecisionSeconds *float64 `json:"timeToDecisionSeconds" binding:"omitempty,gte=0"`
}

type SaveResultRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type AnalyzeRequest struct {
	Selections []preference.Selection `json:"selections" binding:"required,max=500"`
}
