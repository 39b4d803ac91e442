package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/nyfont/internal/backup"
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/saver"
	"github.com/julianstephens/nyfont/internal/settings"
	"github.com/julianstephens/nyfont/internal/storage"
)

// ErrNotLoaded is returned by commands that run before LoadSettings.
var ErrNotLoaded = errors.New("settings not loaded")

type Context struct {
	Store    storage.Provider
	Settings *settings.Store
	Saver    *saver.Debouncer
}

// NewContext wires a debounced saver to store. Settings are read later by LoadSettings.
func NewContext(store storage.Provider) *Context {
	c := &Context{Store: store}
	c.Saver = saver.New(constants.SaveDebounce, c.persist)
	return c
}

func (c *Context) persist() error {
	if c.Settings == nil {
		return ErrNotLoaded
	}
	return c.Store.Persist(c.Settings.Raw())
}

// LoadSettings reads the stored mapping, migrates it and wires every later mutation to the
// debounced saver. A migration that changed anything schedules a save.
func (c *Context) LoadSettings() (settings.Report, error) {
	raw, err := c.Store.LoadRaw()
	if err != nil {
		return settings.Report{}, fmt.Errorf("failed to load settings: %w", err)
	}

	c.Settings = settings.New(raw)
	report := c.Settings.InitializeAndMigrate()
	c.Settings.OnChange(c.Saver.Trigger)
	if report.Changed() {
		c.Saver.Trigger()
	}
	return report, nil
}

// Flush writes any pending change now.
func (c *Context) Flush(ctx context.Context) error {
	if c.Saver == nil {
		return nil
	}
	if err := c.Saver.Flush(ctx); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Close flushes pending changes and releases the store.
func (c *Context) Close(ctx context.Context) error {
	flushErr := c.Flush(ctx)
	if c.Saver != nil {
		c.Saver.Stop()
	}
	if err := c.Store.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
		if flushErr == nil {
			return err
		}
	}
	return flushErr
}

// PerformAutomaticBackup backs up a SQLite store before a command rewrites it. Failures are
// logged and do not stop the command. It returns the backup path, or "" when none was made.
func (c *Context) PerformAutomaticBackup() string {
	if storage.BackendOf(c.Store) != storage.BackendSQLite {
		return ""
	}
	path, err := backup.NewManager(c.Store.GetConfigPath()).Create()
	if err != nil {
		if !errors.Is(err, backup.ErrNoDatabase) {
			logger.Warn("Automatic backup failed", "error", err)
		}
		return ""
	}
	return path
}

// RequireSettings returns the loaded settings store or ErrNotLoaded.
func (c *Context) RequireSettings() (*settings.Store, error) {
	if c.Settings == nil {
		return nil, ErrNotLoaded
	}
	return c.Settings, nil
}

// FormatValue renders a stored setting for terminal output.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "(unset)"
	case string:
		if t == "" {
			return `""`
		}
		return t
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
	case []any:
		return fmt.Sprintf("%d entries", len(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "{" + strings.Join(keys, ", ") + "}"
	default:
		return fmt.Sprintf("%v", t)
	}
}
