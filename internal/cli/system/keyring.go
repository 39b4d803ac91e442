package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/keyring"
	"github.com/julianstephens/nyfont/internal/storage/postgres"
	"github.com/julianstephens/nyfont/internal/tui"
)

// KeyringSetCmd stores the PostgreSQL connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	connStr := strings.TrimSpace(cmd.ConnectionString)
	if !strings.HasPrefix(connStr, "postgres://") &&
		!strings.HasPrefix(connStr, "postgresql://") &&
		!strings.Contains(connStr, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(connStr); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		fmt.Println(tui.Warn("Connection string contains embedded credentials.", ""))
		fmt.Println("   It will be stored as-is in the OS keyring.")
		fmt.Println("   To keep passwords out of connection strings, use ~/.pgpass or PGPASSWORD instead.")
	}

	if err := keyring.SetConnectionString(connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println(tui.Status(true, "Connection string stored in OS keyring", ""))
	fmt.Printf("  Use --config %s to connect with it\n", constants.KeyringConfigValue)
	return nil
}

// KeyringGetCmd prints the stored connection string with any password masked.
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'nyfont keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string retrieved from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

// KeyringDeleteCmd removes the stored connection string.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	fmt.Println(tui.Status(true, "Connection string deleted from OS keyring", ""))
	return nil
}

// KeyringStatusCmd reports keyring availability and where the connection string would
// come from.
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println(tui.Status(false, "OS keyring is not available on this system", ""))
		return keyring.ErrKeyringUnavailable
	}
	fmt.Println(tui.Status(true, "OS keyring is available", ""))

	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println(tui.Status(true, "Connection string is stored in keyring", ""))
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println(tui.MutedStyle.Render("ℹ No connection string stored in keyring"))
	}

	if _, source, err := keyring.ResolveConnectionString(); err == nil && source == keyring.SourceEnv {
		fmt.Println(tui.Warn(constants.EnvDBConnection+" is set and takes precedence over the keyring", ""))
	}
	return nil
}

// maskPassword hides the password in a URL or key=value connection string.
func maskPassword(connStr string) string {
	if scheme, rest, ok := strings.Cut(connStr, "://"); ok && strings.HasPrefix(scheme, "postgres") {
		at := strings.LastIndex(rest, "@")
		if at == -1 {
			return connStr
		}
		user, _, hasPassword := strings.Cut(rest[:at], ":")
		if !hasPassword {
			return connStr
		}
		return scheme + "://" + user + ":****" + rest[at:]
	}

	if !strings.Contains(connStr, "password=") {
		return connStr
	}
	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(part, "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}
