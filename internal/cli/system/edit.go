package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/tui"
)

// EditCmd opens an interactive form for the typography and streaming settings.
type EditCmd struct{}

func (cmd *EditCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	fm := tui.NewDisplayFormModel(store)
	if err := tui.NewDisplayForm(fm).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Edit cancelled, nothing saved.")
			return nil
		}
		return err
	}

	changed, err := fm.Apply(store)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		fmt.Println("No changes.")
		return nil
	}

	fmt.Println(tui.TitleStyle.Render("Updated settings"))
	for _, key := range changed {
		v, _ := store.Get(key)
		fmt.Printf("  %-26s %s\n", key, cli.FormatValue(v))
	}
	return ctx.Flush(context.Background())
}
