package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/distil/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigFileName is the name of the settings file inside the config directory.
const ConfigFileName = "config.toml"

// ConfigStore persists settings as TOML. Values live in an embedded
// memory store under dot keys and are written as nested tables, so
// "keywords.count" becomes count under [keywords].
type ConfigStore struct {
	*memory.ConfigStore

	ioMu     sync.Mutex
	filePath string
}

// DefaultDir returns ~/.distil.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".distil"), nil
}

// NewConfigStore opens configDir/config.toml, creating configDir if
// needed. An empty configDir means DefaultDir.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		ConfigStore: memory.NewConfigStore(),
		filePath:    filepath.Join(configDir, ConfigFileName),
	}
	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.filePath, err)
	}
	return s, nil
}

// Set stores a value and writes the file.
func (s *ConfigStore) Set(key string, value any) error {
	if err := s.ConfigStore.Set(key, value); err != nil {
		return err
	}
	return s.Save()
}

// Save writes every value to the TOML file.
func (s *ConfigStore) Save() error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	data, err := toml.Marshal(unflattenMap(s.Snapshot()))
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Load replaces the values with the file's contents. A missing file
// leaves the store empty.
func (s *ConfigStore) Load() error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		s.Replace(nil)
		return nil
	}
	if err != nil {
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.Replace(flattenMap(loaded, ""))
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// unflattenMap is the inverse of flattenMap. A key that collides with an
// existing scalar is kept verbatim at the top level.
func unflattenMap(m map[string]any) map[string]any {
	result := make(map[string]any)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Shorter keys first so scalars claim their slot before tables.
	slices.SortFunc(keys, func(a, b string) int {
		return strings.Count(a, ".") - strings.Count(b, ".")
	})

	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := result
		ok := true
		for _, part := range parts[:len(parts)-1] {
			next, exists := node[part]
			if !exists {
				child := make(map[string]any)
				node[part] = child
				node = child
				continue
			}
			child, isMap := next.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, taken := node[leaf]; !ok || taken {
			result[key] = m[key]
			continue
		}
		node[leaf] = m[key]
	}

	return result
}
