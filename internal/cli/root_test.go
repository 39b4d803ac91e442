package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/storage"
	"github.com/julianstephens/nyfont/internal/storage/sqlite"
)

func TestLoadSettingsMigratesAndSaves(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	ctx := NewContext(store)

	report, err := ctx.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !report.Changed() {
		t.Fatal("expected migration of an empty store to change it")
	}
	if !ctx.Saver.Pending() {
		t.Error("expected a save to be scheduled after migration")
	}
	if err := ctx.Flush(context.Background()); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	raw, err := store.LoadRaw()
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if raw[constants.SettingPresetsVersion] != float64(constants.CurrentPresetsVersion) {
		t.Errorf("presetsVersion = %v, want %d", raw[constants.SettingPresetsVersion], constants.CurrentPresetsVersion)
	}

	// Second load sees a migrated mapping and schedules nothing
	again := NewContext(store)
	report, err = again.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if report.Changed() {
		t.Errorf("expected no changes on reload, got %+v", report)
	}
	if again.Saver.Pending() {
		t.Error("expected no pending save on reload")
	}
	if err := again.Close(context.Background()); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestPerformAutomaticBackup(t *testing.T) {
	dir := t.TempDir()

	missing := NewContext(sqlite.NewStore(filepath.Join(dir, "missing.db")))
	if got := missing.PerformAutomaticBackup(); got != "" {
		t.Errorf("backup of a missing database = %q, want none", got)
	}

	jsonCtx := NewContext(storage.NewJSONStore(filepath.Join(dir, "nyfont.json")))
	if got := jsonCtx.PerformAutomaticBackup(); got != "" {
		t.Errorf("backup of a JSON store = %q, want none", got)
	}

	store := sqlite.NewStore(filepath.Join(dir, "nyfont.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	ctx := NewContext(store)
	defer ctx.Close(context.Background())

	got := ctx.PerformAutomaticBackup()
	if got == "" {
		t.Fatal("expected a backup of the SQLite store")
	}
	if filepath.Dir(got) != filepath.Join(dir, "backups") {
		t.Errorf("backup path = %s", got)
	}
}

func TestRequireSettings(t *testing.T) {
	ctx := NewContext(sqlite.NewStore(filepath.Join(t.TempDir(), "x.db")))
	if _, err := ctx.RequireSettings(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "(unset)"},
		{"", `""`},
		{"defer", "defer"},
		{14.5, "14.5"},
		{16.0, "16"},
		{0.05, "0.05"},
		{-0.1, "-0.1"},
		{20, "20"},
		{true, "true"},
		{[]any{1, 2}, "2 entries"},
		{map[string]any{"b": 1, "a": 2}, "{a, b}"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
