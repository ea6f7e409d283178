package services

import (
	"context"
	"fmt"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
	"github.com/weyear-labs/weyear-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService runs the year analysis and normalises the result.
type ReviewService struct {
	analysis driven.AnalysisService
}

// NewReviewService creates a new review service.
func NewReviewService(analysis driven.AnalysisService) *ReviewService {
	return &ReviewService{analysis: analysis}
}

// Analyze sends the moments through the remote analysis call. The raw
// result is normalised before it is returned so the dashboard can rely
// on its shape regardless of what the remote service produced.
func (s *ReviewService) Analyze(
	ctx context.Context,
	moments []domain.Moment,
	status driving.StatusFunc,
) (*domain.AnalysisResult, error) {
	if len(moments) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if status == nil {
		status = func(string) {}
	}

	status(domain.StatusConnecting)
	logger.Info("analysing %d moment(s) with model %s", len(moments), s.analysis.ModelName())

	status(domain.StatusDeepAnalysis)
	result, err := s.analysis.Analyze(ctx, moments)
	if err != nil {
		return nil, fmt.Errorf("analyze moments: %w", err)
	}

	result.Normalise()
	logger.Debug("analysis complete: %d posts, %d themes, %d highlights, %d locations",
		result.Summary.TotalPosts, len(result.Summary.TopThemes),
		len(result.Summary.Highlights), len(result.Summary.Locations))
	return result, nil
}
