// Package env layers environment variable overrides on top of another
// configuration store. A key such as "keywords.count" is read from
// DISTIL_KEYWORDS_COUNT when that variable is set.
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/distil/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultPrefix is prepended to every variable name.
const DefaultPrefix = "DISTIL"

var keyReplacer = strings.NewReplacer(".", "_", "-", "_")

// LoadDotEnv reads .env files into the process environment. Variables
// already set take precedence. With no paths it reads ./.env; a missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	return godotenv.Load(paths...)
}

// ConfigStore reads from the environment first and falls back to base.
// Writes go to base only.
type ConfigStore struct {
	base   driven.ConfigStore
	prefix string
	lookup func(string) (string, bool)
}

// NewConfigStore wraps base. An empty prefix selects DefaultPrefix.
func NewConfigStore(base driven.ConfigStore, prefix string) *ConfigStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &ConfigStore{
		base:   base,
		prefix: prefix,
		lookup: os.LookupEnv,
	}
}

// VarName returns the environment variable consulted for key.
func (s *ConfigStore) VarName(key string) string {
	return s.prefix + "_" + strings.ToUpper(keyReplacer.Replace(key))
}

func (s *ConfigStore) env(key string) (string, bool) {
	v, ok := s.lookup(s.VarName(key))
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Get returns the raw override string when set, otherwise the base value.
func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.env(key); ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if v, ok := s.env(key); ok {
		return v
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer value. Unparseable overrides are ignored.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := s.env(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return s.base.GetInt(key)
}

// GetFloat retrieves a numeric value. Unparseable overrides are ignored.
func (s *ConfigStore) GetFloat(key string) float64 {
	if v, ok := s.env(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return s.base.GetFloat(key)
}

// GetBool retrieves a boolean value. Unparseable overrides are ignored.
func (s *ConfigStore) GetBool(key string) bool {
	if v, ok := s.env(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.base.GetBool(key)
}

// Keys returns the keys stored in base.
func (s *ConfigStore) Keys() []string {
	return s.base.Keys()
}

// Set stores value in base.
func (s *ConfigStore) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Save persists base.
func (s *ConfigStore) Save() error {
	return s.base.Save()
}

// Load reloads base.
func (s *ConfigStore) Load() error {
	return s.base.Load()
}

// Path returns the base store path.
func (s *ConfigStore) Path() string {
	return s.base.Path()
}
