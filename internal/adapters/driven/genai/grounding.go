package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
)

// Ensure GroundingClient implements the interface.
var _ driven.LocationService = (*GroundingClient)(nil)

// defaultLocationPrompt is the fallback grounding query template when no
// PromptStore is configured. It expects a %s placeholder for the
// comma-joined place names.
const defaultLocationPrompt = `Find details for these locations mentioned in my year review: %s. Return a summary list.`

// GroundingClient enriches place names through the geo-grounding-capable
// endpoint. Only grounding-citation metadata is read; the free-text
// answer body is ignored.
type GroundingClient struct {
	client      *Client
	model       string
	promptStore driven.PromptStore
}

// NewGroundingClient creates a new grounding client.
func NewGroundingClient(client *Client, model string) *GroundingClient {
	if model == "" {
		model = domain.DefaultGroundingModel
	}
	return &GroundingClient{client: client, model: model}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (g *GroundingClient) SetPromptStore(store driven.PromptStore) {
	g.promptStore = store
}

// Enrich maps place names to grounded location records. There is no
// cardinality guarantee: the remote service returns zero or more
// citations, not necessarily one per input name. Citations lacking
// geographic data are skipped.
func (g *GroundingClient) Enrich(ctx context.Context, names []string) ([]domain.LocationInfo, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(g.loadPrompt(), strings.Join(names, ", "))
	resp, err := g.client.generateContent(ctx, g.model, generateContentRequest{
		Contents: []content{{Parts: []part{{Text: query}}}},
		Tools:    []tool{{GoogleMaps: &struct{}{}}},
	})
	if err != nil {
		return nil, err
	}

	var locations []domain.LocationInfo
	for _, cand := range resp.Candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Maps == nil {
				continue
			}
			locations = append(locations, locationFromChunk(chunk.Maps))
		}
	}
	return locations, nil
}

// locationFromChunk maps one geographic citation to a LocationInfo.
// The address is sourced from the first place-answer-source identifier,
// so it is best-effort and possibly not human-readable.
func locationFromChunk(m *mapsChunk) domain.LocationInfo {
	info := domain.LocationInfo{
		Name:   m.Title,
		URI:    m.URI,
		Rating: m.Rating,
	}
	if info.Name == "" {
		info.Name = domain.UnknownPlaceName
	}
	if len(m.PlaceAnswerSources) > 0 {
		info.Address = m.PlaceAnswerSources[0].PlaceID
	}
	return info
}

// loadPrompt loads the grounding query template, falling back to the
// default if unavailable.
func (g *GroundingClient) loadPrompt() string {
	if g.promptStore == nil {
		return defaultLocationPrompt
	}
	prompt, err := g.promptStore.Load(driven.PromptLocationQuery)
	if err != nil {
		return defaultLocationPrompt
	}
	return prompt
}
