package services

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
	"github.com/weyear-labs/weyear-cli/internal/logger"
)

// Ensure LocationLookupService implements the interface.
var _ driving.LocationLookupService = (*LocationLookupService)(nil)

// LocationLookupService enriches place names via the grounding endpoint.
// Enrichment is cosmetic: any failure degrades to an empty list and is
// only logged, never surfaced to the user.
type LocationLookupService struct {
	locations driven.LocationService
}

// NewLocationLookupService creates a new location lookup service.
// The driven service may be nil; lookups then return an empty list.
func NewLocationLookupService(locations driven.LocationService) *LocationLookupService {
	return &LocationLookupService{locations: locations}
}

// Lookup enriches place names. Empty input short-circuits without a
// remote call.
func (s *LocationLookupService) Lookup(ctx context.Context, names []string) []domain.LocationInfo {
	if len(names) == 0 || s.locations == nil {
		return nil
	}

	infos, err := s.locations.Enrich(ctx, names)
	if err != nil {
		logger.Warn("location enrichment failed: %v", err)
		return nil
	}
	return infos
}
