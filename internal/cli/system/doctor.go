package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/nyfont/internal/backup"
	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
	"github.com/julianstephens/nyfont/internal/settings"
	"github.com/julianstephens/nyfont/internal/storage"
	"github.com/julianstephens/nyfont/internal/tui"
)

type DoctorCmd struct{}

// Run reports on the store and the stored settings without writing anything.
func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println(tui.TitleStyle.Render("Running diagnostics..."))
	fmt.Println()

	hasError := false
	fail := func(label string, err error) {
		fmt.Println(tui.Status(false, label, err.Error()))
		hasError = true
	}
	skip := func(label string) {
		fmt.Println(tui.MutedStyle.Render("⊘ " + label + " (storage not reachable)"))
	}

	raw, err := checkStorage(ctx)
	if err != nil {
		fail("Storage reachable", err)
		skip("Schema version")
		skip("Settings")
		fmt.Println()
		return errors.New("one or more health checks failed")
	}
	fmt.Println(tui.Status(true, "Storage reachable", ctx.Store.GetConfigPath()))

	if detail, err := checkSchemaVersion(ctx); err != nil {
		fail("Schema version", err)
	} else {
		fmt.Println(tui.Status(true, "Schema version", detail))
	}

	if storage.BackendOf(ctx.Store) == storage.BackendSQLite {
		if detail, ok := checkBackups(ctx); ok {
			fmt.Println(tui.Status(true, "Backups", detail))
		} else {
			fmt.Println(tui.Warn("Backups", detail))
		}
	}

	issues := settings.Audit(raw)
	if len(issues) == 0 {
		fmt.Println(tui.Status(true, "Settings normalized", ""))
	} else {
		fmt.Println(tui.Warn("Settings normalized", fmt.Sprintf("%d issue(s), run 'nyfont migrate' to fix", len(issues))))
		for _, issue := range issues {
			fmt.Printf("   %s: %s\n", issue.Key, issue.Message)
		}
	}

	s, err := checkTypedView(raw)
	if err != nil {
		fail("Settings decode", err)
	} else {
		fmt.Println(tui.Status(true, "Settings decode", ""))
		for _, w := range settingsWarnings(s) {
			fmt.Println(tui.Warn(w, ""))
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	fmt.Println(tui.OKStyle.Render("All diagnostics passed!"))
	return nil
}

func checkStorage(ctx *cli.Context) (models.Config, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load storage: %w", err)
	}
	raw, err := ctx.Store.LoadRaw()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return raw, nil
}

func checkSchemaVersion(ctx *cli.Context) (string, error) {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return "not versioned", nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return "", err
	}
	switch {
	case current > latest:
		return "", fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	case current < latest:
		return "", fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return fmt.Sprintf("v%d", current), nil
}

// checkTypedView migrates raw in memory and decodes it. Nothing is persisted.
func checkTypedView(raw models.Config) (models.Settings, error) {
	trial := settings.New(raw)
	trial.InitializeAndMigrate()
	return trial.Snapshot()
}

func settingsWarnings(s models.Settings) []string {
	var warnings []string
	if s.StreamAnimCursor && s.StreamAnimCursorShape == constants.CursorShapeImage &&
		strings.TrimSpace(s.StreamAnimCursorImageURL) == "" {
		warnings = append(warnings, "Cursor shape is 'image' but no cursor image URL is set")
	}
	if s.CustomFontWrapEnabled && (s.CustomFontOpen == "" || s.CustomFontClose == "") {
		warnings = append(warnings, "Custom font wrap is enabled without both delimiters")
	}
	if s.LocaleFontEnabled && len(s.LocaleFonts) == 0 {
		warnings = append(warnings, "Locale fonts are enabled but no locale rules exist")
	}
	return warnings
}

// checkBackups reports the backup state of a SQLite store. A missing backup is a warning only.
func checkBackups(ctx *cli.Context) (string, bool) {
	list, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return err.Error(), false
	}
	if len(list) == 0 {
		return "none found, create one with 'nyfont backup create'", false
	}
	return fmt.Sprintf("%d, latest %s", len(list), list[0].Timestamp.Format("2006-01-02 15:04")), true
}
