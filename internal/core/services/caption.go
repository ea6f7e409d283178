package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure CaptionService implements the interface.
var _ driving.CaptionService = (*CaptionService)(nil)

// CaptionService assembles the final shareable caption and exports it
// to the system clipboard.
type CaptionService struct{}

// NewCaptionService creates a new caption service.
func NewCaptionService() *CaptionService {
	return &CaptionService{}
}

// Assemble builds the final caption from the result's draft of the given
// style plus the two user-supplied lines.
func (s *CaptionService) Assemble(
	result *domain.AnalysisResult,
	style domain.DraftStyle,
	userSummary, userGoal string,
) string {
	if result == nil {
		return ""
	}
	return domain.AssembleCaption(result.Draft(style), userSummary, userGoal)
}

// CopyToClipboard writes the caption text to the system clipboard.
func (s *CaptionService) CopyToClipboard(_ context.Context, text string) error {
	return copyToClipboard(text)
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
