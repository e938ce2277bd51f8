package driving

import "github.com/custodia-labs/distil/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Save validates and persists settings.
	Save(settings *domain.Settings) error

	// Set parses value for the named key and persists it.
	// Unknown keys return ErrNotFound.
	Set(key, value string) error

	// Value returns the current value of key formatted as a string.
	Value(key string) (string, error)

	// Keys returns the settable keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
