package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

var (
	coverSize string
	coverOut  string
)

var coverCmd = &cobra.Command{
	Use:   "cover [prompt]",
	Short: "Generate a year cover poster",
	Long: `Generate a 3:4 cover poster for the given prompt and write it to a
PNG file.`,
	Args: cobra.ExactArgs(1),
	RunE: runCover,
}

func init() {
	coverCmd.Flags().StringVar(&coverSize, "size", "", "output size tier (1K, 2K or 4K)")
	coverCmd.Flags().StringVarP(&coverOut, "output", "o", "weyear-cover.png", "output PNG path")
	rootCmd.AddCommand(coverCmd)
}

func runCover(cmd *cobra.Command, args []string) error {
	if coverService == nil {
		return errors.New("cover service not configured")
	}

	size := domain.DefaultAppSettings().DefaultImageSize
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings != nil {
			size = settings.DefaultImageSize
		}
	}
	if coverSize != "" {
		size = domain.ImageSize(coverSize)
	}

	dataURI, err := coverService.Generate(cmd.Context(), args[0], size)
	if err != nil {
		return fmt.Errorf("cover generation failed: %w", err)
	}

	if err := coverService.ExportPNG(dataURI, coverOut); err != nil {
		return fmt.Errorf("failed to write cover: %w", err)
	}

	cmd.Printf("Cover (%s) written to %s\n", size, coverOut)
	return nil
}
