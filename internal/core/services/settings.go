package services

import (
	"fmt"
	"os"

	"github.com/weyear-labs/weyear-cli/internal/core/domain"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driven"
	"github.com/weyear-labs/weyear-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// APIKeyEnv is the environment variable consulted before the config store.
const APIKeyEnv = "GEMINI_API_KEY"

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIKey           = "api.key"
	keyAnalysisModel    = "models.analysis"
	keyGroundingModel   = "models.grounding"
	keyImageModel       = "models.image"
	keyDefaultImageSize = "image.default_size"
	keyEnrichLocations  = "dashboard.enrich_locations"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Models: domain.ModelSettings{
			Analysis:  s.getString(keyAnalysisModel, defaults.Models.Analysis),
			Grounding: s.getString(keyGroundingModel, defaults.Models.Grounding),
			Image:     s.getString(keyImageModel, defaults.Models.Image),
		},
		DefaultImageSize: s.getImageSize(defaults.DefaultImageSize),
		EnrichLocations:  s.getBool(keyEnrichLocations, defaults.EnrichLocations),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyAnalysisModel, settings.Models.Analysis); err != nil {
		return fmt.Errorf("save analysis model: %w", err)
	}
	if err := s.configStore.Set(keyGroundingModel, settings.Models.Grounding); err != nil {
		return fmt.Errorf("save grounding model: %w", err)
	}
	if err := s.configStore.Set(keyImageModel, settings.Models.Image); err != nil {
		return fmt.Errorf("save image model: %w", err)
	}
	if err := s.configStore.Set(keyDefaultImageSize, settings.DefaultImageSize.String()); err != nil {
		return fmt.Errorf("save default image size: %w", err)
	}
	if err := s.configStore.Set(keyEnrichLocations, settings.EnrichLocations); err != nil {
		return fmt.Errorf("save enrich locations: %w", err)
	}
	return nil
}

// APIKey resolves the generative API key: environment first, then the
// config store. Empty when unconfigured.
func (s *SettingsService) APIKey() string {
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	return s.configStore.GetString(keyAPIKey)
}

// SetAPIKey stores the generative API key in the config store.
func (s *SettingsService) SetAPIKey(key string) error {
	if err := s.configStore.Set(keyAPIKey, key); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

// getString reads a string key with a default fallback.
func (s *SettingsService) getString(key, defaultValue string) string {
	if value := s.configStore.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool reads a bool key with a default fallback.
func (s *SettingsService) getBool(key string, defaultValue bool) bool {
	if _, exists := s.configStore.Get(key); exists {
		return s.configStore.GetBool(key)
	}
	return defaultValue
}

// getImageSize reads the default size tier, falling back when the stored
// value is outside the closed set.
func (s *SettingsService) getImageSize(defaultValue domain.ImageSize) domain.ImageSize {
	size := domain.ImageSize(s.configStore.GetString(keyDefaultImageSize))
	if size.IsValid() {
		return size
	}
	return defaultValue
}
