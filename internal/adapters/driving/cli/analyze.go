package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

var (
	analyzeSplit bool
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run a one-shot year analysis",
	Long: `Analyze a year of journal text without the interactive wizard.

Reads the text from the given file, or from stdin when no file is given,
and prints the dashboard summary and caption drafts. With --split, each
non-empty input line becomes a separate moment instead of one raw dump.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSplit, "split", false, "treat each non-empty line as a separate moment")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the raw analysis result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	text, err := readAnalyzeInput(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyInput
	}

	moments := buildMoments(text, analyzeSplit)

	status := func(line string) {
		fmt.Fprintln(os.Stderr, line)
	}

	result, err := reviewService.Analyze(cmd.Context(), moments, status)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return outputAnalysisJSON(cmd, result)
	}
	outputAnalysisReport(cmd, result)

	if locationsService != nil && len(result.Summary.Locations) > 0 {
		locations := locationsService.Lookup(cmd.Context(), result.Summary.Locations)
		outputLocations(cmd, locations)
	}

	return nil
}

func readAnalyzeInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// buildMoments turns the input text into moments. The default path
// wraps the whole text into the single raw-dump moment; --split makes
// one moment per non-empty line.
func buildMoments(text string, split bool) []domain.Moment {
	if !split {
		return []domain.Moment{domain.NewRawMoment(strings.TrimSpace(text))}
	}

	var moments []domain.Moment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		moments = append(moments, domain.Moment{
			ID:      uuid.NewString(),
			Date:    domain.SentinelMomentDate,
			Content: line,
		})
	}
	return moments
}

func outputAnalysisJSON(cmd *cobra.Command, result *domain.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalysisReport(cmd *cobra.Command, result *domain.AnalysisResult) {
	s := result.Summary

	cmd.Println("Year in Review")
	cmd.Println("==============")
	cmd.Println()
	cmd.Printf("Moments: %d\n", s.TotalPosts)
	cmd.Println()

	cmd.Println("[Themes]")
	for _, t := range s.TopThemes {
		cmd.Printf("  %-12s %d\n", t.Theme, t.Count)
	}
	cmd.Println()

	cmd.Println("[Monthly Activity]")
	for _, m := range s.MonthlyActivity {
		cmd.Printf("  %-6s %s\n", m.Month, strings.Repeat("#", max(m.Count, 0)))
	}
	cmd.Println()

	cmd.Println("[Sentiment]")
	cmd.Printf("  positive %.0f / neutral %.0f / negative %.0f\n",
		s.Sentiment.Positive, s.Sentiment.Neutral, s.Sentiment.Negative)
	cmd.Println()

	cmd.Println("[Highlights]")
	for _, h := range s.Highlights {
		cmd.Printf("  * %s\n", h)
	}
	cmd.Println()

	cmd.Println("[Drafts]")
	for _, style := range domain.AllDraftStyles() {
		cmd.Printf("--- %s ---\n%s\n\n", style.Description(), result.Draft(style))
	}
}

func outputLocations(cmd *cobra.Command, locations []domain.LocationInfo) {
	cmd.Println("[Locations]")
	if len(locations) == 0 {
		cmd.Println("  (no grounded locations)")
		return
	}
	for _, loc := range locations {
		line := "  " + loc.Name
		if loc.Rating > 0 {
			line += fmt.Sprintf(" (%.1f)", loc.Rating)
		}
		if loc.URI != "" {
			line += " " + loc.URI
		}
		cmd.Println(line)
	}
}
