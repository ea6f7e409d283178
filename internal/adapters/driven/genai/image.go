package genai

import (
	"context"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
)

// Ensure ImageClient implements the interface.
var _ driven.ImageService = (*ImageClient)(nil)

// pngDataURIPrefix wraps generated image bytes for in-memory handling.
const pngDataURIPrefix = "data:image/png;base64,"

// ImageClient renders cover images through the image-generation endpoint.
type ImageClient struct {
	client *Client
	model  string
}

// NewImageClient creates a new image generation client.
func NewImageClient(client *Client, model string) *ImageClient {
	if model == "" {
		model = domain.DefaultImageModel
	}
	return &ImageClient{client: client, model: model}
}

// Generate renders one image for the prompt at the given size tier and
// returns it as a data URI. The aspect ratio is fixed to portrait 3:4.
// The response parts are scanned in order; the first part carrying
// inline image data wins.
func (i *ImageClient) Generate(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
	resp, err := i.client.generateContent(ctx, i.model, generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{
				AspectRatio: domain.CoverAspectRatio,
				ImageSize:   size.String(),
			},
		},
	})
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return pngDataURIPrefix + p.InlineData.Data, nil
			}
		}
	}
	return "", domain.ErrNoImage
}
