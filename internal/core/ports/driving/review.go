package driving

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// ReviewService runs the year analysis for external actors.
type ReviewService interface {
	// Analyze sends the moments through the remote analysis call and
	// returns a normalised result. StatusFunc, when non-nil, receives
	// human-readable progress lines for display; it has no functional
	// effect.
	Analyze(ctx context.Context, moments []domain.Moment, status StatusFunc) (*domain.AnalysisResult, error)
}

// StatusFunc receives progress status lines during a long operation.
type StatusFunc func(status string)

// LocationLookupService enriches extracted place names for the dashboard.
type LocationLookupService interface {
	// Lookup enriches place names via the grounding endpoint. Failures
	// degrade to an empty list; the error is logged, never returned.
	// Empty input returns an empty list without a remote call.
	Lookup(ctx context.Context, names []string) []domain.LocationInfo
}

// CoverService generates and exports the year cover image.
type CoverService interface {
	// Generate renders a cover image for the prompt at the given size
	// tier and returns it as a data URI. Size tiers outside the closed
	// set are rejected before any network attempt.
	Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error)

	// ExportPNG decodes a data URI cover image and writes it to path.
	ExportPNG(dataURI, path string) error
}

// CaptionService assembles and exports the final shareable caption.
type CaptionService interface {
	// Assemble builds the final caption from the result's draft of the
	// given style plus the two user-supplied lines.
	Assemble(result *domain.AnalysisResult, style domain.DraftStyle, userSummary, userGoal string) string

	// CopyToClipboard writes the assembled caption to the system clipboard.
	CopyToClipboard(ctx context.Context, text string) error
}
