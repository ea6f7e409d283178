package domain

// Default model identifiers for the three remote endpoints.
const (
	// DefaultAnalysisModel handles the structured year analysis. The
	// heavier model is deliberate: timeline reconstruction needs
	// multi-step reasoning.
	DefaultAnalysisModel = "gemini-3-pro-preview"

	// DefaultGroundingModel handles location grounding queries.
	DefaultGroundingModel = "gemini-2.5-flash"

	// DefaultImageModel handles cover image generation.
	DefaultImageModel = "gemini-3-pro-image-preview"
)

// ModelSettings holds the model identifier for each remote endpoint.
type ModelSettings struct {
	// Analysis is the structured-output analysis model.
	Analysis string

	// Grounding is the geo-grounding model.
	Grounding string

	// Image is the image-generation model.
	Image string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Models holds the per-endpoint model identifiers.
	Models ModelSettings

	// DefaultImageSize is the size tier preselected in the cover stage.
	DefaultImageSize ImageSize

	// EnrichLocations toggles the dashboard's grounding enrichment.
	EnrichLocations bool
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is never part of settings defaults; it is resolved from
// the environment or the config store at call time.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Models: ModelSettings{
			Analysis:  DefaultAnalysisModel,
			Grounding: DefaultGroundingModel,
			Image:     DefaultImageModel,
		},
		DefaultImageSize: ImageSize2K,
		EnrichLocations:  true,
	}
}
