// Package cli implements the cobra command-line interface for weyear.
// Services are injected by main before Execute runs; commands that need
// a service fail with a clear error when it is absent.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
	"github.com/weyear-labs/weyear-cli/internal/logger"
)

// version is set by main at startup.
var version = "dev"

// Injected services, set via the Set functions below.
var (
	reviewService    driving.ReviewService
	locationsService driving.LocationLookupService
	coverService     driving.CoverService
	captionService   driving.CaptionService
	settingsService  driving.SettingsService
)

var verbose bool

// rootCmd is the base command. Running it with no subcommand launches
// the interactive wizard.
var rootCmd = &cobra.Command{
	Use:   "weyear",
	Short: "AI-powered year-in-review generator",
	Long: `weyear turns a year of scattered journal notes into a structured
year-in-review: a statistical dashboard, a generated cover poster and a
ready-to-share caption. Run without arguments to start the interactive
wizard, or use 'weyear analyze' for one-shot analysis.`,
	RunE: runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetReviewService injects the year analysis service.
func SetReviewService(s driving.ReviewService) {
	reviewService = s
}

// SetLocationLookupService injects the location enrichment service.
func SetLocationLookupService(s driving.LocationLookupService) {
	locationsService = s
}

// SetCoverService injects the cover image service.
func SetCoverService(s driving.CoverService) {
	coverService = s
}

// SetCaptionService injects the caption service.
func SetCaptionService(s driving.CaptionService) {
	captionService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
