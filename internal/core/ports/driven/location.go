package driven

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// LocationService enriches free-text place names with grounded details.
type LocationService interface {
	// Enrich resolves the given place names via a geo-grounded query.
	// Empty input returns (nil, nil) without a remote call. The result
	// carries whatever grounding data the remote service attached; it
	// is not guaranteed to cover every input name.
	Enrich(ctx context.Context, names []string) ([]domain.LocationInfo, error)
}
