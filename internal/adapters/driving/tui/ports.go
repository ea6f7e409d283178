// Package tui provides the interactive terminal wizard for weyear.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review runs the year analysis.
	Review driving.ReviewService

	// Locations enriches extracted place names for the dashboard.
	Locations driving.LocationLookupService

	// Cover generates and exports the year cover image.
	Cover driving.CoverService

	// Caption assembles and exports the final shareable caption.
	Caption driving.CaptionService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	review driving.ReviewService,
	locations driving.LocationLookupService,
	cover driving.CoverService,
	caption driving.CaptionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Review:    review,
		Locations: locations,
		Cover:     cover,
		Caption:   caption,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil. Locations and Settings are
// optional; their absence degrades to no enrichment and defaults.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	if p.Cover == nil {
		return ErrMissingCoverService
	}
	if p.Caption == nil {
		return ErrMissingCaptionService
	}
	return nil
}
