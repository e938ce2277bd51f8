package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyKeywordCount     = "keywords.count"
	KeySummarySentences = "summary.sentences"
	KeyOutputFormat     = "output.format"
	KeyOutputColor      = "output.color"
	KeyServerAddr       = "server.addr"
	KeyServerRateLimit  = "server.rate_limit"
)

var settingKeys = []string{
	KeyKeywordCount,
	KeySummarySentences,
	KeyOutputFormat,
	KeyOutputColor,
	KeyServerAddr,
	KeyServerRateLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or out-of-range stored values
// fall back to their defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		KeywordCount:     s.getInt(KeyKeywordCount, defaults.KeywordCount, domain.ValidateKeywordCount),
		SummarySentences: s.getInt(KeySummarySentences, defaults.SummarySentences, domain.ValidateSummarySentences),
		OutputFormat:     s.getOutputFormat(defaults.OutputFormat),
		Color:            s.getBool(KeyOutputColor, defaults.Color),
		ServerAddr:       s.getString(KeyServerAddr, defaults.ServerAddr),
		RateLimit:        s.getFloat(KeyServerRateLimit, defaults.RateLimit),
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyKeywordCount, settings.KeywordCount},
		{KeySummarySentences, settings.SummarySentences},
		{KeyOutputFormat, settings.OutputFormat.String()},
		{KeyOutputColor, settings.Color},
		{KeyServerAddr, settings.ServerAddr},
		{KeyServerRateLimit, settings.RateLimit},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses value for key, validates it and persists that key alone.
// Other keys are left untouched, so environment overrides read through
// the store never reach the settings file.
func (s *SettingsService) Set(key, value string) error {
	// Defaults are valid, so Validate only judges the field being set.
	settings := domain.DefaultSettings()
	var stored any

	value = strings.TrimSpace(value)
	switch key {
	case KeyKeywordCount:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.KeywordCount = n
		stored = n
	case KeySummarySentences:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.SummarySentences = n
		stored = n
	case KeyOutputFormat:
		f, err := domain.ParseOutputFormat(strings.ToLower(value))
		if err != nil {
			return err
		}
		settings.OutputFormat = f
		stored = f.String()
	case KeyOutputColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s %q: %w", key, value, domain.ErrInvalidParameter)
		}
		settings.Color = b
		stored = b
	case KeyServerAddr:
		settings.ServerAddr = value
		stored = value
	case KeyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s %q: %w", key, value, domain.ErrInvalidParameter)
		}
		settings.RateLimit = f
		stored = f
	default:
		return fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Value returns the current value of key formatted as a string.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyKeywordCount:
		return strconv.Itoa(settings.KeywordCount), nil
	case KeySummarySentences:
		return strconv.Itoa(settings.SummarySentences), nil
	case KeyOutputFormat:
		return settings.OutputFormat.String(), nil
	case KeyOutputColor:
		return strconv.FormatBool(settings.Color), nil
	case KeyServerAddr:
		return settings.ServerAddr, nil
	case KeyServerRateLimit:
		return strconv.FormatFloat(settings.RateLimit, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int, validate func(int) error) int {
	val := s.configStore.GetInt(key)
	if val == 0 || validate(val) != nil {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(KeyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(strings.ToLower(val))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, value, domain.ErrInvalidParameter)
	}
	return n, nil
}
