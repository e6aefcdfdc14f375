package service

import (
	"github.com/pwmeter/pwmeter-go/internal/metrics"
	"github.com/pwmeter/pwmeter-go/internal/model"
	"github.com/pwmeter/pwmeter-go/internal/password"
)

// StrengthService handles password strength checks.
type StrengthService struct {
	evaluator *password.Evaluator
}

// NewStrengthService creates a new StrengthService using the given blacklist.
func NewStrengthService(blacklist password.Blacklist) *StrengthService {
	return &StrengthService{evaluator: password.NewEvaluator(blacklist)}
}

// Evaluate rates the requested password. It has no error path.
func (s *StrengthService) Evaluate(req model.EvaluateRequest) model.EvaluateResponse {
	res := s.evaluator.Evaluate(req.Password)
	metrics.Evaluations.WithLabelValues(res.Rating.String()).Inc()

	feedback := res.Feedback
	if feedback == nil {
		feedback = []password.Feedback{}
	}

	return model.EvaluateResponse{
		Rating:   res.Rating,
		Score:    res.Score,
		MaxScore: password.MaxScore,
		Meter:    model.MeterPercent(res.Rating),
		Message:  res.Message,
		Feedback: feedback,
	}
}

// Tips returns the security best-practice list.
func (s *StrengthService) Tips() model.TipsResponse {
	return model.TipsResponse{Tips: password.SecurityTips}
}
