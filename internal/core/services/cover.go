package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
	"github.com/weyear-labs/weyear-cli/internal/logger"
)

// Ensure CoverService implements the interface.
var _ driving.CoverService = (*CoverService)(nil)

// dataURIPrefix is the encoding every generated cover is wrapped in.
const dataURIPrefix = "data:image/png;base64,"

// CoverService generates and exports the year cover image.
type CoverService struct {
	images driven.ImageService
	gate   driven.CredentialGate
}

// NewCoverService creates a new cover service. The credential gate is
// optional; when nil the generation call proceeds directly.
func NewCoverService(images driven.ImageService, gate driven.CredentialGate) *CoverService {
	return &CoverService{images: images, gate: gate}
}

// Generate renders a cover image as a data URI. The size tier is
// validated before any network attempt; if a credential gate is present
// and no credential is selected yet, the selection flow runs first.
func (s *CoverService) Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
	if !size.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidImageSize, size)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyInput
	}

	if err := s.ensureCredential(ctx); err != nil {
		return "", fmt.Errorf("credential selection: %w", err)
	}

	logger.Info("generating %s cover image", size)
	uri, err := s.images.Generate(ctx, prompt, size)
	if err != nil {
		return "", fmt.Errorf("generate cover: %w", err)
	}
	return uri, nil
}

// ensureCredential runs the host credential-selection flow once if the
// gate reports no selected credential. Not a retry loop.
func (s *CoverService) ensureCredential(ctx context.Context) error {
	if s.gate == nil {
		return nil
	}
	selected, err := s.gate.HasSelectedCredential(ctx)
	if err != nil {
		return err
	}
	if selected {
		return nil
	}
	return s.gate.OpenSelectionFlow(ctx)
}

// ExportPNG decodes a data URI cover image and writes it to path.
func (s *CoverService) ExportPNG(dataURI, path string) error {
	if dataURI == "" {
		return domain.ErrNoCover
	}
	raw, ok := strings.CutPrefix(dataURI, dataURIPrefix)
	if !ok {
		return fmt.Errorf("%w: not a PNG data URI", domain.ErrNoImage)
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("decode cover image: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cover image: %w", err)
	}
	logger.Info("cover image written to %s (%d bytes)", path, len(data))
	return nil
}
