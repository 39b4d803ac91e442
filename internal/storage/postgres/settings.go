package postgres

import (
	"fmt"

	"github.com/julianstephens/nyfont/internal/models"
	"github.com/julianstephens/nyfont/internal/storage/kv"
)

// LoadRaw returns the stored configuration mapping.
func (s *Store) LoadRaw() (models.Config, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return kv.Load(s.db)
}

// Persist replaces the stored mapping with cfg.
func (s *Store) Persist(cfg models.Config) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return kv.Replace(s.db, kv.Postgres, cfg)
}
