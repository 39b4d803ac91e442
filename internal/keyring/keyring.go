// Package keyring keeps the PostgreSQL connection string out of shell history and config
// files by storing it in the OS credential store.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/nyfont/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string is stored
	ErrNotFound = errors.New("connection string not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source names where a resolved connection string came from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
)

// GetConnectionString reads the stored connection string.
func GetConnectionString() (string, error) {
	connStr, err := gokeyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return connStr, nil
	case errors.Is(err, gokeyring.ErrNotFound):
		return "", ErrNotFound
	default:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
}

// SetConnectionString stores connStr, replacing any previous value.
func SetConnectionString(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := gokeyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the stored connection string.
func DeleteConnectionString() error {
	err := gokeyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gokeyring.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
}

// ResolveConnectionString returns the connection string from NYFONT_DB_CONNECTION when it
// is set, otherwise from the keyring.
func ResolveConnectionString() (string, Source, error) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return env, SourceEnv, nil
	}
	connStr, err := GetConnectionString()
	if err != nil {
		return "", SourceKeyring, err
	}
	return connStr, SourceKeyring, nil
}

// IsAvailable makes a best-effort check of the OS keyring. A missing entry still means the
// keyring answered.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "availability-check")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
