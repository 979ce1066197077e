package driving

import "github.com/custodia-labs/sentiment-cli/internal/core/domain"

// SettingsService manages pipeline settings.
type SettingsService interface {
	// Get retrieves current pipeline settings.
	Get() (*domain.PipelineSettings, error)

	// Save persists pipeline settings.
	Save(settings *domain.PipelineSettings) error

	// Validate checks if current settings can drive a run.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.PipelineSettings

	// ConfigPath returns where settings are read from.
	ConfigPath() string
}
