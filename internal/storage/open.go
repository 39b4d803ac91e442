package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/keyring"
	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/storage/postgres"
	"github.com/julianstephens/nyfont/internal/storage/sqlite"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSON     Backend = "json"
)

// DetectBackend picks a backend from the --config value.
func DetectBackend(config string) Backend {
	switch {
	case strings.HasPrefix(config, "postgres://"), strings.HasPrefix(config, "postgresql://"):
		return BackendPostgres
	case config == constants.KeyringConfigValue:
		return BackendPostgres
	case strings.EqualFold(filepath.Ext(config), constants.JSONFileSuffix):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// BackendOf reports which backend p is.
func BackendOf(p Provider) Backend {
	switch p.(type) {
	case *postgres.Store:
		return BackendPostgres
	case *JSONStore:
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// Open returns the provider for config without touching the backend. A literal PostgreSQL
// connection string must not carry a password; "keyring" reads the connection string from
// NYFONT_DB_CONNECTION or the OS keyring instead.
func Open(config string) (Provider, error) {
	switch DetectBackend(config) {
	case BackendPostgres:
		connStr := config
		if config == constants.KeyringConfigValue {
			resolved, source, err := keyring.ResolveConnectionString()
			if err != nil {
				if errors.Is(err, keyring.ErrNotFound) {
					return nil, fmt.Errorf("no connection string configured: set %s or run '%s keyring set'",
						constants.EnvDBConnection, constants.AppName)
				}
				return nil, err
			}
			logger.Debug("Using PostgreSQL connection string", "source", source)
			connStr = resolved
		} else if _, err := postgres.ValidateConnString(connStr); err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	case BackendJSON:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(path), nil
	default:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
