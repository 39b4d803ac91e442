package kv

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/nyfont/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		t.Fatalf("failed to create settings table: %v", err)
	}
	return db
}

func TestReplaceAndLoad(t *testing.T) {
	db := setupTestDB(t)

	cfg := models.Config{
		"fontsEnabled":      true,
		"bodyFontSize":      14.5,
		"streamAnimSpeed":   20,
		"globalFont":        "Noto Serif SC",
		"bodyLetterSpacing": nil,
		"importedFonts": []any{
			map[string]any{"id": "a", "family": "A", "cssUrl": "https://a", "kind": "css"},
		},
		"futureKey": map[string]any{"nested": "x"},
	}
	if err := Replace(db, SQLite, cfg); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := Load(db)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := models.Config{
		"fontsEnabled":      true,
		"bodyFontSize":      14.5,
		"streamAnimSpeed":   float64(20),
		"globalFont":        "Noto Serif SC",
		"bodyLetterSpacing": nil,
		"importedFonts": []any{
			map[string]any{"id": "a", "family": "A", "cssUrl": "https://a", "kind": "css"},
		},
		"futureKey": map[string]any{"nested": "x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %#v, want %#v", got, want)
	}
}

func TestReplaceDropsRemovedKeys(t *testing.T) {
	db := setupTestDB(t)

	if err := Replace(db, SQLite, models.Config{"a": 1, "b": 2}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := Replace(db, SQLite, models.Config{"b": 3}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := Load(db)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 1 || got["b"] != float64(3) {
		t.Errorf("Load() = %v, want only b=3", got)
	}
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`"defer"`, "defer"},
		{`true`, true},
		{`null`, nil},
		{`12`, float64(12)},
		{`plain text`, "plain text"},
		{``, ""},
	}
	for _, tt := range tests {
		if got := DecodeValue(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	if got := SQLite.placeholder(2); got != "?" {
		t.Errorf("SQLite.placeholder(2) = %q, want ?", got)
	}
	if got := Postgres.placeholder(2); got != "$2" {
		t.Errorf("Postgres.placeholder(2) = %q, want $2", got)
	}
}
