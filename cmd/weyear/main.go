// Command weyear is the AI year-in-review generator.
package main

import (
	"fmt"
	"os"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driven/config/file"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driven/genai"
	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/cli"
	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/services"
	"github.com/weyear-labs/weyear-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		defaults := domain.DefaultAppSettings()
		settings = &defaults
	}

	client := genai.NewClient(genai.Config{
		Key: settingsService.APIKey,
	})

	analysisClient := genai.NewAnalysisClient(client, settings.Models.Analysis)
	groundingClient := genai.NewGroundingClient(client, settings.Models.Grounding)
	imageClient := genai.NewImageClient(client, settings.Models.Image)

	// Custom prompt templates are optional; their absence falls back to
	// the built-in defaults.
	if promptStore, err := file.NewPromptStore(""); err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		analysisClient.SetPromptStore(promptStore)
		groundingClient.SetPromptStore(promptStore)
	}

	cli.SetVersion(version)
	cli.SetReviewService(services.NewReviewService(analysisClient))
	cli.SetLocationLookupService(services.NewLocationLookupService(groundingClient))
	cli.SetCoverService(services.NewCoverService(imageClient, nil))
	cli.SetCaptionService(services.NewCaptionService())
	cli.SetSettingsService(settingsService)

	return cli.Execute()
}
