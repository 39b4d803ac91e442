package fonts

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/nyfont/internal/cli"
	core "github.com/julianstephens/nyfont/internal/settings"
	"github.com/julianstephens/nyfont/internal/storage"
)

func setupTestStore(t *testing.T) (*cli.Context, func()) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nyfont.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := cli.NewContext(store)
	if _, err := ctx.LoadSettings(); err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}

	cleanup := func() {
		if err := ctx.Close(context.Background()); err != nil {
			t.Errorf("failed to close context: %v", err)
		}
	}
	return ctx, cleanup
}

func TestFontAddListRemove(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	presets := len(core.Presets())
	if got := len(ctx.Settings.ImportedFonts()); got != presets {
		t.Fatalf("expected %d preset fonts after migration, got %d", presets, got)
	}

	add := &FontAddCmd{Family: "My Serif", URL: "https://fonts.example.com/my-serif.css"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("font add failed: %v", err)
	}
	fonts := ctx.Settings.ImportedFonts()
	last := fonts[len(fonts)-1]
	if last.Family != "My Serif" || !strings.HasPrefix(last.ID, "font_") || last.Kind != "css" {
		t.Errorf("unexpected imported font: %+v", last)
	}

	if err := (&FontListCmd{}).Run(ctx); err != nil {
		t.Errorf("font list failed: %v", err)
	}
	if err := (&PresetsCmd{}).Run(ctx); err != nil {
		t.Errorf("presets failed: %v", err)
	}

	if err := (&FontRemoveCmd{Font: "My Serif"}).Run(ctx); err != nil {
		t.Fatalf("font remove failed: %v", err)
	}
	if got := len(ctx.Settings.ImportedFonts()); got != presets {
		t.Errorf("expected %d fonts after remove, got %d", presets, got)
	}

	if err := ctx.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	raw, err := ctx.Store.LoadRaw()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if list, ok := raw["importedFonts"].([]any); !ok || len(list) != presets {
		t.Errorf("persisted importedFonts = %v", raw["importedFonts"])
	}
}

func TestFontAdd_Errors(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	tests := []struct {
		name string
		cmd  *FontAddCmd
		want error
	}{
		{"duplicate preset family", &FontAddCmd{Family: "ZCOOL KuaiLe", URL: "https://x/y.css"}, core.ErrFontExists},
		{"missing url", &FontAddCmd{Family: "Nameless", URL: "  "}, core.ErrInvalidFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFontRemove_NotFound(t *testing.T) {
	ctx, cleanup := setupTestStore(t)
	defer cleanup()

	err := (&FontRemoveCmd{Font: "Comic Sans"}).Run(ctx)
	if !errors.Is(err, core.ErrFontNotFound) {
		t.Errorf("expected ErrFontNotFound, got %v", err)
	}
}
