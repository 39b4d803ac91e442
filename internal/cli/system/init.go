package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
	"github.com/julianstephens/nyfont/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Discard existing settings and start from defaults."`
	Source string `help:"Config path or connection string to import settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	fileBacked := storage.BackendOf(ctx.Store) != storage.BackendPostgres

	if c.Force && fileBacked {
		if c.Source != "" && samePath(c.Source, path) {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
		if _, err := os.Stat(path); err == nil {
			if backupPath := ctx.PerformAutomaticBackup(); backupPath != "" {
				fmt.Printf("Backed up existing storage to: %s\n", backupPath)
			}
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, path)

	if c.Force && !fileBacked {
		if err := ctx.Store.Persist(models.Config{}); err != nil {
			return fmt.Errorf("failed to clear existing settings: %w", err)
		}
		fmt.Println("Cleared existing settings.")
	}

	if c.Source != "" {
		fmt.Printf("Importing settings from: %s\n", c.Source)
		if err := importSettings(ctx, c.Source); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
	}

	report, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	printReport(report)

	return ctx.Flush(context.Background())
}

// importSettings copies the raw mapping from source as is; migration runs afterwards.
func importSettings(ctx *cli.Context, source string) error {
	src, err := storage.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source: %w", err)
	}

	raw, err := src.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to read source settings: %w", err)
	}
	if err := ctx.Store.Persist(raw); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	fmt.Printf("  Imported %d keys\n", len(raw))
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
