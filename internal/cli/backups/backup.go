package backups

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/nyfont/internal/backup"
	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/storage"
)

// ErrUnsupportedBackend is returned for stores that are not a SQLite file.
var ErrUnsupportedBackend = errors.New("backups are only supported for SQLite storage")

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if storage.BackendOf(ctx.Store) != storage.BackendSQLite {
		return nil, ErrUnsupportedBackend
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	list, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(list), backup.MaxBackups)
	for _, b := range list {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	// The database file is replaced underneath any open connection
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	safety, err := mgr.Restore(path)
	if err != nil {
		return err
	}
	if safety != "" {
		fmt.Printf("Created backup of current database: %s\n", filepath.Base(safety))
	}
	fmt.Printf("✓ Restored settings from: %s\n", filepath.Base(path))
	return nil
}

// resolveBackupPath accepts an absolute path, a path relative to the working directory, or a
// bare filename inside the backup directory.
func resolveBackupPath(mgr *backup.Manager, name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return filepath.Abs(name)
	}
	inDir := filepath.Join(mgr.Dir(), name)
	if _, err := os.Stat(inDir); err == nil {
		return inDir, nil
	}
	return "", fmt.Errorf("backup file not found: %s", name)
}
