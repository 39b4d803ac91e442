package storage

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

// JSONStore keeps the whole mapping in a single JSON document.
type JSONStore struct {
	path   string
	config models.Config
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// Init creates the file with an empty mapping. An existing file is left in place and loaded.
func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.config = models.Config{}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	cfg := models.Config{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	// A file containing null decodes to a nil map
	if cfg == nil {
		cfg = models.Config{}
	}
	s.config = cfg
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// LoadRaw returns a fresh copy of the stored mapping so callers can mutate it freely.
func (s *JSONStore) LoadRaw() (models.Config, error) {
	if s.config == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(s.config)
	if err != nil {
		return nil, fmt.Errorf("failed to copy settings: %w", err)
	}
	cfg := models.Config{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to copy settings: %w", err)
	}
	return cfg, nil
}

func (s *JSONStore) Persist(cfg models.Config) error {
	if s.config == nil {
		return fmt.Errorf("storage not loaded")
	}
	if cfg == nil {
		cfg = models.Config{}
	}
	s.config = cfg
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// save writes through a temporary file so a crash never leaves a truncated document.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}
