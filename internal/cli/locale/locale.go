package locale

import (
	"fmt"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/constants"
)

type LocaleListCmd struct{}

func (c *LocaleListCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	enabled, _ := store.Get(constants.SettingLocaleFontEnabled)
	rules := store.LocaleRules()
	if len(rules) == 0 {
		fmt.Println("No locale font rules.")
		return nil
	}
	fmt.Printf("Locale Font Rules (enabled: %s):\n", cli.FormatValue(enabled))
	for _, r := range rules {
		fmt.Printf("  %-10s %-24s %s\n", r.Locale, r.Family, r.ID)
	}
	return nil
}

type LocaleAddCmd struct {
	Locale string `arg:"" help:"Language tag the rule applies to, e.g. ja or zh-hant."`
	Family string `arg:"" help:"Font family to use for that language."`
}

func (c *LocaleAddCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	rule, err := store.AddLocaleRule(c.Locale, c.Family)
	if err != nil {
		return err
	}
	fmt.Printf("Added rule %s -> %s (id %s)\n", rule.Locale, rule.Family, rule.ID)
	return nil
}

type LocaleRemoveCmd struct {
	Rule string `arg:"" help:"Rule ID or locale to remove."`
}

func (c *LocaleRemoveCmd) Run(ctx *cli.Context) error {
	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	n, err := store.RemoveLocaleRule(c.Rule)
	if err != nil {
		return fmt.Errorf("rule %q: %w", c.Rule, err)
	}
	fmt.Printf("Removed %d rule(s)\n", n)
	return nil
}
