package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure models, the default cover size and the API key.

Use subcommands to change specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the generative API key",
	Long: `Prompt for the generative API key and store it in the config file.

The GEMINI_API_KEY environment variable, when set, always takes
precedence over the stored key.`,
	RunE: runSettingsSetKey,
}

var settingsSizeCmd = &cobra.Command{
	Use:   "size [1K|2K|4K]",
	Short: "Set the default cover image size",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSize,
}

var settingsEnrichCmd = &cobra.Command{
	Use:   "enrich [on|off]",
	Short: "Toggle dashboard location enrichment",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsEnrich,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	settingsCmd.AddCommand(settingsSizeCmd)
	settingsCmd.AddCommand(settingsEnrichCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Models]")
	cmd.Printf("  Analysis:  %s\n", settings.Models.Analysis)
	cmd.Printf("  Grounding: %s\n", settings.Models.Grounding)
	cmd.Printf("  Image:     %s\n", settings.Models.Image)
	cmd.Println()

	cmd.Println("[Cover]")
	cmd.Printf("  Default size: %s (%s)\n",
		settings.DefaultImageSize, settings.DefaultImageSize.Description())
	cmd.Println()

	cmd.Println("[Dashboard]")
	enrich := "off"
	if settings.EnrichLocations {
		enrich = "on"
	}
	cmd.Printf("  Location enrichment: %s\n", enrich)
	cmd.Println()

	cmd.Println("[API Key]")
	if key := settingsService.APIKey(); key != "" {
		cmd.Printf("  %s\n", maskAPIKey(key))
	} else {
		cmd.Println("  (not set)")
	}

	return nil
}

func runSettingsSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()

	if key == "" {
		return errors.New("no key entered")
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Println("API key stored.")
	return nil
}

func runSettingsSize(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	size := domain.ImageSize(strings.ToUpper(args[0]))
	if !size.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidImageSize, args[0])
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DefaultImageSize = size

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Default cover size set to %s.\n", size)
	return nil
}

func runSettingsEnrich(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enrich bool
	switch strings.ToLower(args[0]) {
	case "on", "true":
		enrich = true
	case "off", "false":
		enrich = false
	default:
		return fmt.Errorf("invalid value %q, expected on or off", args[0])
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.EnrichLocations = enrich

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Location enrichment turned %s.\n", args[0])
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
