package backup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/nyfont/internal/models"
	"github.com/julianstephens/nyfont/internal/storage/sqlite"
)

func setupTestDB(t *testing.T, cfg models.Config) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nyfont.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Persist(cfg); err != nil {
		t.Fatalf("failed to persist settings: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

func readSettings(t *testing.T, dbPath string) models.Config {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()
	raw, err := store.LoadRaw()
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	return raw
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestCreate_NoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("expected ErrNoDatabase, got %v", err)
	}
}

func TestCreateAndList(t *testing.T) {
	dbPath := setupTestDB(t, models.Config{"globalFont": "Inter"})
	mgr := NewManager(dbPath)
	mgr.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local) }

	a, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Dir(a) != filepath.Join(filepath.Dir(dbPath), DirName) {
		t.Errorf("backup written outside the backup directory: %s", a)
	}
	info, err := os.Stat(a)
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("backup permissions = %o, want 600", perm)
	}

	// Same second, so the second backup gets a counter suffix
	b, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasSuffix(b, "-1.db") {
		t.Errorf("expected counter suffix, got %s", filepath.Base(b))
	}

	mgr.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local) }
	c, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	list, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{c, b, a}
	if len(list) != len(want) {
		t.Fatalf("expected %d backups, got %d", len(want), len(list))
	}
	for i, info := range list {
		if info.Path != want[i] {
			t.Errorf("backup %d = %s, want %s", i, filepath.Base(info.Path), filepath.Base(want[i]))
		}
		if info.Size == 0 {
			t.Errorf("backup %s reported as empty", filepath.Base(info.Path))
		}
	}
}

func TestList_NoDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nyfont.db"))
	list, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no backups, got %d", len(list))
	}
}

func TestCreate_Rotates(t *testing.T) {
	dbPath := setupTestDB(t, models.Config{})
	mgr := NewManager(dbPath)
	mgr.now = fixedClock()

	var paths []string
	for i := 0; i < MaxBackups+3; i++ {
		p, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		paths = append(paths, p)
	}

	list, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", MaxBackups, len(list))
	}
	if list[0].Path != paths[len(paths)-1] {
		t.Errorf("newest backup = %s, want %s", list[0].Path, paths[len(paths)-1])
	}
	for _, old := range paths[:3] {
		if _, err := os.Stat(old); !os.IsNotExist(err) {
			t.Errorf("old backup %s was not rotated out", filepath.Base(old))
		}
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t, models.Config{"globalFont": "Inter"})
	mgr := NewManager(dbPath)
	mgr.now = fixedClock()

	saved, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Persist(models.Config{"globalFont": "Lato"}); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	store.Close()

	safety, err := mgr.Restore(saved)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if safety == "" {
		t.Error("expected a safety backup of the replaced database")
	}

	if got := readSettings(t, dbPath)["globalFont"]; got != "Inter" {
		t.Errorf("globalFont after restore = %v, want Inter", got)
	}
	if got := readSettings(t, safety)["globalFont"]; got != "Lato" {
		t.Errorf("safety backup globalFont = %v, want Lato", got)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file left behind")
	}
}

func TestRestore_Invalid(t *testing.T) {
	dbPath := setupTestDB(t, models.Config{"globalFont": "Inter"})
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for a missing backup")
	}

	garbage := filepath.Join(t.TempDir(), "nyfont-20260301-090000.db")
	if err := os.WriteFile(garbage, []byte("this is not a database, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(garbage); err == nil {
		t.Error("expected error for a corrupted backup")
	}
	if got := readSettings(t, dbPath)["globalFont"]; got != "Inter" {
		t.Errorf("database changed by a failed restore: %v", got)
	}
}
