package driving

import "github.com/weyear-labs/weyear-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// APIKey resolves the generative API key: environment first, then
	// the config store. Empty when unconfigured.
	APIKey() string

	// SetAPIKey stores the generative API key in the config store.
	SetAPIKey(key string) error
}
