package fonts

import (
	"errors"
	"fmt"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/models"
	core "github.com/julianstephens/nyfont/internal/settings"
)

type FontListCmd struct{}

func (c *FontListCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	fonts := store.ImportedFonts()
	if len(fonts) == 0 {
		fmt.Println("No imported fonts.")
		return nil
	}
	fmt.Printf("Imported Fonts (%d):\n", len(fonts))
	for _, f := range fonts {
		fmt.Printf("  %-24s %s\n", f.Family, f.CSSURL)
		fmt.Printf("  %-24s id=%s kind=%s\n", "", f.ID, f.Kind)
	}
	return nil
}

type FontAddCmd struct {
	Family string `arg:"" help:"CSS font-family name."`
	URL    string `arg:"" name:"url" help:"Stylesheet URL that declares the font face."`
	ID     string `help:"Explicit font ID (generated when omitted)."`
}

func (c *FontAddCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	added, err := store.AddImportedFont(models.FontDescriptor{
		ID:     c.ID,
		Family: c.Family,
		CSSURL: c.URL,
	})
	if errors.Is(err, core.ErrFontExists) {
		return fmt.Errorf("font %q: %w", c.Family, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Imported font %s (id %s)\n", added.Family, added.ID)
	return nil
}

type FontRemoveCmd struct {
	Font string `arg:"" help:"Font ID or family to remove."`
}

func (c *FontRemoveCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	removed, err := store.RemoveImportedFont(c.Font)
	if err != nil {
		return fmt.Errorf("font %q: %w", c.Font, err)
	}
	fmt.Printf("Removed font %s\n", removed.Family)
	return nil
}

// PresetsCmd lists the built-in catalog and whether each preset is imported.
type PresetsCmd struct{}

func (c *PresetsCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	installed := map[string]bool{}
	for _, f := range store.ImportedFonts() {
		installed[f.ID] = true
		installed[f.Family] = true
	}

	presets := core.Presets()
	fmt.Printf("Preset Fonts (%d):\n", len(presets))
	for _, p := range presets {
		mark := " "
		if installed[p.ID] || installed[p.Family] {
			mark = "✓"
		}
		fmt.Printf("  %s %s\n", mark, p.Family)
	}
	return nil
}
