package postgres

import (
	"os"
	"reflect"
	"testing"

	"github.com/julianstephens/nyfont/internal/models"
)

// Set NYFONT_TEST_POSTGRES to run, e.g.
// NYFONT_TEST_POSTGRES="postgres://nyfont_user@localhost:5432/nyfont_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("NYFONT_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("NYFONT_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	original, err := store.LoadRaw()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	t.Cleanup(func() { store.Persist(original) })

	cfg := models.Config{
		"streamAnimEffect": "glow",
		"customFontSize":   18.5,
		"importedFonts":    []any{map[string]any{"id": "x", "family": "X"}},
		"hostOwnedKey":     true,
	}
	if err := store.Persist(cfg); err != nil {
		t.Fatalf("Failed to persist settings: %v", err)
	}

	got, err := store.LoadRaw()
	if err != nil {
		t.Fatalf("Failed to reload settings: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("LoadRaw() = %#v, want %#v", got, cfg)
	}

	n, err := store.Migrate()
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no pending migrations after Init, got %d", n)
	}
}
