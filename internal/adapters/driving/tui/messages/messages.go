// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm
// architecture: stage views emit intents, the app runs the matching
// effect, and completions flow back as messages.
package messages

import (
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// TextSubmitted is sent when the import stage submits journal text.
type TextSubmitted struct {
	Text string
}

// SyncDelayElapsed fires when the fixed simulated-sync delay is over.
type SyncDelayElapsed struct{}

// SyncTicked advances the fabricated sync progress animation. Cosmetic.
type SyncTicked struct{}

// AnalysisStatusChanged updates the analyzing-stage status line.
type AnalysisStatusChanged struct {
	Status string
}

// AnalysisCompleted carries the analysis outcome back to the app.
// Gen identifies the request generation; stale completions are dropped.
type AnalysisCompleted struct {
	Gen    int
	Result *domain.AnalysisResult
	Err    error
}

// LocationsLoaded carries enriched locations for the dashboard.
type LocationsLoaded struct {
	Gen       int
	Locations []domain.LocationInfo
}

// AdvanceRequested is the explicit user advance from the current stage.
type AdvanceRequested struct{}

// GenerateCoverRequested asks the app to run cover generation.
type GenerateCoverRequested struct {
	Prompt string
	Size   domain.ImageSize
}

// CoverCompleted carries the cover generation outcome.
type CoverCompleted struct {
	Gen     int
	DataURI string
	Err     error
}

// ExportCoverRequested asks the app to write the cover image to disk.
type ExportCoverRequested struct {
	Path string
}

// CoverExported signals a cover export completed.
type CoverExported struct {
	Path string
	Err  error
}

// CopyCaptionRequested asks the app to copy the assembled caption.
type CopyCaptionRequested struct {
	Text string
}

// CaptionCopied signals a clipboard write completed.
type CaptionCopied struct {
	Err error
}

// RestartRequested returns the wizard to a fresh session.
type RestartRequested struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
