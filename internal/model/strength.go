package model

import "github.com/pwmeter/pwmeter-go/internal/password"

// EvaluateRequest represents a strength check request.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse represents a strength check result.
// Meter is a display percentage (Weak 20, Moderate 60, Strong 100).
type EvaluateResponse struct {
	Rating   password.Rating     `json:"rating"`
	Score    int                 `json:"score"`
	MaxScore int                 `json:"max_score"`
	Meter    int                 `json:"meter"`
	Message  string              `json:"message"`
	Feedback []password.Feedback `json:"feedback"`
}

// TipsResponse lists security best practices.
type TipsResponse struct {
	Tips []string `json:"tips"`
}

// MeterPercent maps a rating to its progress bar fill.
func MeterPercent(r password.Rating) int {
	switch r {
	case password.Strong:
		return 100
	case password.Moderate:
		return 60
	default:
		return 20
	}
}
