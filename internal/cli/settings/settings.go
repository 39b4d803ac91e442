package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/constants"
	core "github.com/julianstephens/nyfont/internal/settings"
)

type SettingsCmd struct {
	List  bool     `help:"List current settings."`
	Keys  bool     `help:"List recognized setting keys and their types."`
	Reset []string `help:"Restore the default for the named settings." placeholder:"KEY"`

	Set map[string]string `help:"Set any recognized setting by key, e.g. --set streamAnimSpeed=30." placeholder:"KEY=VALUE"`

	FontsEnabled          *bool   `help:"Enable or disable font replacement."`
	GlobalFont            *string `help:"Font family applied to the whole chat."`
	BodyFont              *string `help:"Font family for body text."`
	DialogueFont          *string `help:"Font family for dialogue."`
	CustomFont            *string `help:"Font family for text between the custom delimiters."`
	CustomFontOpen        *string `help:"Opening delimiter for custom font text."`
	CustomFontClose       *string `help:"Closing delimiter for custom font text."`
	CustomFontWrapEnabled *bool   `help:"Wrap text between the custom delimiters."`
	LocaleFontEnabled     *bool   `help:"Enable per-locale font rules."`
	ChatFontImportEnabled *bool   `help:"Load imported font stylesheets."`

	BodyFontSize          *string `help:"Body font size in px (6-72, empty to unset)."`
	BodyLetterSpacing     *string `help:"Body letter spacing in em (-0.2-0.5, empty to unset)."`
	DialogueFontSize      *string `help:"Dialogue font size in px (6-72, empty to unset)."`
	DialogueLetterSpacing *string `help:"Dialogue letter spacing in em (-0.2-0.5, empty to unset)."`
	CustomFontSize        *string `help:"Custom font size in px (6-72, empty to unset)."`
	CustomLetterSpacing   *string `help:"Custom letter spacing in em (-0.2-0.5, empty to unset)."`
	LocaleFontSize        *string `help:"Locale font size in px (6-72, empty to unset)."`
	LocaleLetterSpacing   *string `help:"Locale letter spacing in em (-0.2-0.5, empty to unset)."`

	StreamRenderMode         *string `help:"Streaming render mode (defer, buffer)."`
	StreamAnimEffect         *string `help:"Streaming animation effect (none, typewriter, blur, glow)."`
	StreamAnimSpeed          *int    `help:"Delay in ms per character (3-80, higher is slower, 0 to follow the stream)."`
	StreamAnimCursor         *bool   `help:"Show the streaming cursor."`
	StreamAnimCursorShape    *string `help:"Cursor shape (bar, block, underscore, hollow, thin, image)."`
	StreamAnimCursorAnim     *string `help:"Cursor animation (blink, pulse, solid, smooth, elastic, glitch)."`
	StreamAnimCursorImageURL *string `name:"stream-anim-cursor-image-url" help:"Image URL used when the cursor shape is image."`
}

type update struct {
	key   string
	value any
}

// updates collects flag values in a stable order, typed flags first.
func (c *SettingsCmd) updates() []update {
	var out []update
	addBool := func(key string, v *bool) {
		if v != nil {
			out = append(out, update{key, *v})
		}
	}
	addString := func(key string, v *string) {
		if v != nil {
			out = append(out, update{key, *v})
		}
	}

	addBool(constants.SettingFontsEnabled, c.FontsEnabled)
	addString(constants.SettingGlobalFont, c.GlobalFont)
	addString(constants.SettingBodyFont, c.BodyFont)
	addString(constants.SettingDialogueFont, c.DialogueFont)
	addString(constants.SettingCustomFont, c.CustomFont)
	addString(constants.SettingCustomFontOpen, c.CustomFontOpen)
	addString(constants.SettingCustomFontClose, c.CustomFontClose)
	addBool(constants.SettingCustomFontWrapEnabled, c.CustomFontWrapEnabled)
	addBool(constants.SettingLocaleFontEnabled, c.LocaleFontEnabled)
	addBool(constants.SettingChatFontImportEnabled, c.ChatFontImportEnabled)

	addString(constants.SettingBodyFontSize, c.BodyFontSize)
	addString(constants.SettingBodyLetterSpacing, c.BodyLetterSpacing)
	addString(constants.SettingDialogueFontSize, c.DialogueFontSize)
	addString(constants.SettingDialogueLetterSpacing, c.DialogueLetterSpacing)
	addString(constants.SettingCustomFontSize, c.CustomFontSize)
	addString(constants.SettingCustomLetterSpacing, c.CustomLetterSpacing)
	addString(constants.SettingLocaleFontSize, c.LocaleFontSize)
	addString(constants.SettingLocaleLetterSpacing, c.LocaleLetterSpacing)

	addString(constants.SettingStreamRenderMode, c.StreamRenderMode)
	addString(constants.SettingStreamAnimEffect, c.StreamAnimEffect)
	if c.StreamAnimSpeed != nil {
		out = append(out, update{constants.SettingStreamAnimSpeed, *c.StreamAnimSpeed})
	}
	addBool(constants.SettingStreamAnimCursor, c.StreamAnimCursor)
	addString(constants.SettingStreamAnimCursorShape, c.StreamAnimCursorShape)
	addString(constants.SettingStreamAnimCursorAnim, c.StreamAnimCursorAnim)
	addString(constants.SettingStreamAnimCursorImageURL, c.StreamAnimCursorImageURL)

	keys := make([]string, 0, len(c.Set))
	for k := range c.Set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, update{strings.TrimSpace(k), c.Set[k]})
	}
	return out
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.Keys {
		printKeys()
		return nil
	}

	store, err := ctx.RequireSettings()
	if err != nil {
		return err
	}

	if c.List {
		printSettings(store)
		return nil
	}

	changed := 0
	for _, key := range c.Reset {
		v, err := store.Reset(strings.TrimSpace(key))
		if err != nil {
			return err
		}
		fmt.Printf("  %s reset to %s\n", key, cli.FormatValue(v))
		changed++
	}

	for _, u := range c.updates() {
		stored, err := store.Set(u.key, u.value)
		if err != nil {
			return err
		}
		note := ""
		if in := fmt.Sprint(u.value); in != "" && in != fmt.Sprint(stored) {
			note = " (normalized from " + in + ")"
		}
		fmt.Printf("  %s = %s%s\n", u.key, cli.FormatValue(stored), note)
		changed++
	}

	if changed > 0 {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}

func printSettings(store *core.Store) {
	fmt.Println("Current Settings:")
	for _, f := range core.Fields() {
		v, _ := store.Get(f.Key)
		fmt.Printf("  %-26s %s\n", f.Key+":", cli.FormatValue(v))
	}
	fmt.Println("\nEffective Streaming Settings:")
	fmt.Printf("  %-26s %s\n", "Render mode:", store.CurrentRenderMode())
	fmt.Printf("  %-26s %s\n", "Effect:", store.CurrentAnimEffect())
	fmt.Printf("  %-26s %s\n", "Speed:", formatSpeed(store))
	fmt.Printf("  %-26s %s / %s\n", "Cursor:", store.CurrentCursorShape(), store.CurrentCursorAnim())
}

func printKeys() {
	fmt.Println("Recognized Settings:")
	for _, f := range core.Fields() {
		line := fmt.Sprintf("  %-26s %s", f.Key, f.Kind)
		if len(f.Allowed) > 0 {
			line += " (" + strings.Join(f.Allowed, ", ") + ")"
		}
		if !f.Settable {
			line += " [read-only]"
		}
		fmt.Println(line)
	}
}

func formatSpeed(store *core.Store) string {
	if store.IsSyncSpeed() {
		return "follows stream"
	}
	return fmt.Sprintf("%d ms per character", store.CurrentAnimSpeed())
}
