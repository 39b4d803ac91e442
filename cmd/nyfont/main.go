package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/cli/backups"
	"github.com/julianstephens/nyfont/internal/cli/fonts"
	"github.com/julianstephens/nyfont/internal/cli/locale"
	"github.com/julianstephens/nyfont/internal/cli/settings"
	"github.com/julianstephens/nyfont/internal/cli/system"
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/errors"
	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite or JSON file path, PostgreSQL connection string, or 'keyring'. PostgreSQL credentials must NOT be embedded in the connection string; use .pgpass, NYFONT_DB_CONNECTION or the OS keyring instead." type:"string" default:"~/.config/nyfont/nyfont.db" env:"NYFONT_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"NYFONT_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize nyfont storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run schema and settings migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change settings."`
	Edit     system.EditCmd       `cmd:"" help:"Edit typography and streaming settings interactively."`
	Fonts    struct {
		List   fonts.FontListCmd   `cmd:"" help:"List imported fonts." default:"1"`
		Add    fonts.FontAddCmd    `cmd:"" help:"Import a web font."`
		Remove fonts.FontRemoveCmd `cmd:"" help:"Remove an imported font."`
	} `cmd:"" help:"Manage imported fonts."`
	Locale struct {
		List   locale.LocaleListCmd   `cmd:"" help:"List locale font rules." default:"1"`
		Add    locale.LocaleAddCmd    `cmd:"" help:"Add a locale font rule."`
		Remove locale.LocaleRemoveCmd `cmd:"" help:"Remove locale font rules."`
	} `cmd:"" help:"Manage per-locale font rules."`
	Presets fonts.PresetsCmd `cmd:"" help:"List the built-in preset fonts."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability." default:"1"`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Back up the SQLite settings database."`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups." default:"1"`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore the settings database from a backup."`
	} `cmd:"" help:"Manage backups of the SQLite settings database."`
	DebugCmd system.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Settings manager for the Ny-font-manager chat font extension"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	command := strings.Fields(ctx.Command())[0]

	// Keyring commands must work while the configured store is unreachable
	if command == "keyring" {
		errors.Fatal(ctx.Run(&cli.Context{}))
		return
	}

	store, err := storage.Open(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	appCtx := cli.NewContext(store)

	err = run(ctx, appCtx, command)
	if closeErr := appCtx.Close(context.Background()); err == nil {
		err = closeErr
	}
	errors.Fatal(err)
}

// run loads what the selected command needs before dispatching to it. init, doctor and
// backup manage the store themselves; migrate loads settings on its own after the schema step.
func run(ctx *kong.Context, appCtx *cli.Context, command string) error {
	switch command {
	case "init", "doctor", "backup":
	case "migrate":
		if err := appCtx.Store.Load(); err != nil {
			return err
		}
	default:
		if err := appCtx.Store.Load(); err != nil {
			return err
		}
		if _, err := appCtx.LoadSettings(); err != nil {
			return err
		}
	}
	return ctx.Run(appCtx)
}

// logDir keeps logs next to a file store, or under the default config directory otherwise.
func logDir(config string) string {
	if storage.DetectBackend(config) != storage.BackendPostgres {
		if path, err := storage.ExpandPath(config); err == nil {
			return filepath.Dir(path)
		}
	}
	path, err := storage.ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return os.TempDir()
	}
	return filepath.Dir(path)
}
