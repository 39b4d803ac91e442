package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/settings"
	"github.com/julianstephens/nyfont/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if pendingChanges(ctx) {
		if backupPath := ctx.PerformAutomaticBackup(); backupPath != "" {
			fmt.Printf("Backed up storage to: %s\n", backupPath)
		}
	}

	if m, ok := ctx.Store.(storage.Migrator); ok {
		count, err := m.Migrate()
		if err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
		if count == 0 {
			fmt.Println("Schema is up to date.")
		} else {
			fmt.Printf("Applied %d schema migration(s).\n", count)
		}
	}

	report, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	printReport(report)

	return ctx.Flush(context.Background())
}

// pendingChanges reports whether migrate is going to write to the store.
func pendingChanges(ctx *cli.Context) bool {
	if m, ok := ctx.Store.(storage.Migrator); ok {
		current, latest, err := m.SchemaVersion()
		if err != nil || current < latest {
			return true
		}
	}
	raw, err := ctx.Store.LoadRaw()
	return err != nil || len(settings.Audit(raw)) > 0
}

func printReport(r settings.Report) {
	if !r.Changed() {
		fmt.Println("Settings are up to date.")
		return
	}
	fmt.Println("Settings migrated:")
	if len(r.Defaulted) > 0 {
		fmt.Printf("  Defaults applied:  %d\n", len(r.Defaulted))
	}
	if len(r.Normalized) > 0 {
		fmt.Printf("  Normalized:        %s\n", strings.Join(r.Normalized, ", "))
	}
	if len(r.Repaired) > 0 {
		fmt.Printf("  Reset to empty:    %s\n", strings.Join(r.Repaired, ", "))
	}
	if r.WrapDerived {
		fmt.Println("  Custom font wrap:  derived from custom font settings")
	}
	if len(r.PresetsAdded) > 0 {
		fmt.Printf("  Presets added:     %d\n", len(r.PresetsAdded))
	}
}
