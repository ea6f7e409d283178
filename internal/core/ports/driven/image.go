package driven

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
)

// ImageService generates cover images from a text prompt.
type ImageService interface {
	// Generate renders an image for the prompt at the given size tier
	// and returns it as a PNG data URI.
	Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error)
}

// CredentialGate models a host environment that requires an explicit
// credential selection before image generation is allowed. A nil gate
// means no such requirement exists.
type CredentialGate interface {
	// HasSelectedCredential reports whether a credential is already
	// selected in the host environment.
	HasSelectedCredential(ctx context.Context) (bool, error)

	// OpenSelectionFlow opens the host's credential selection flow and
	// blocks until it completes.
	OpenSelectionFlow(ctx context.Context) error
}
