package storage

import "github.com/julianstephens/nyfont/internal/models"

// Provider persists the configuration mapping. Implementations store the mapping as a
// whole and never interpret its values.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	LoadRaw() (models.Config, error)
	Persist(models.Config) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by backends with a versioned schema.
type Migrator interface {
	Migrate() (int, error)
	SchemaVersion() (current, latest int, err error)
}
