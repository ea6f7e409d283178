package driven

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// AnalysisService performs the structured year analysis on a set of
// moments. Implementations call a remote generative model and parse its
// structured output.
type AnalysisService interface {
	// Analyze runs the analysis and returns the parsed result.
	// The result is not normalised; callers repair its shape.
	Analyze(ctx context.Context, moments []domain.Moment) (*domain.AnalysisResult, error)

	// ModelName returns the model identifier handling the analysis,
	// for logging and display.
	ModelName() string
}
