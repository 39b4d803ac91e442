// Package tui holds the interactive display-settings form and the shared terminal styles.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/settings"
)

// DisplayFormModel holds the form's editable values as text, the way the inputs show them.
type DisplayFormModel struct {
	RenderMode  string
	AnimEffect  string
	AnimSpeed   string
	Cursor      bool
	CursorShape string
	CursorAnim  string
	CursorImage string

	BodyFontSize          string
	BodyLetterSpacing     string
	DialogueFontSize      string
	DialogueLetterSpacing string
	CustomFontSize        string
	CustomLetterSpacing   string
	LocaleFontSize        string
	LocaleLetterSpacing   string
}

// NewDisplayFormModel reads the current values from store.
func NewDisplayFormModel(store *settings.Store) *DisplayFormModel {
	optional := func(key string) string {
		v, _ := store.Get(key)
		if num, ok := settings.ParseOptionalNumber(v); ok {
			return strconv.FormatFloat(num, 'f', -1, 64)
		}
		return ""
	}
	cursor, _ := store.Get(constants.SettingStreamAnimCursor)
	image, _ := store.Get(constants.SettingStreamAnimCursorImageURL)

	return &DisplayFormModel{
		RenderMode:  store.CurrentRenderMode(),
		AnimEffect:  store.CurrentAnimEffect(),
		AnimSpeed:   strconv.Itoa(store.CurrentAnimSpeed()),
		Cursor:      settings.Truthy(cursor),
		CursorShape: store.CurrentCursorShape(),
		CursorAnim:  store.CurrentCursorAnim(),
		CursorImage: settings.NormalizeCursorImageURL(image),

		BodyFontSize:          optional(constants.SettingBodyFontSize),
		BodyLetterSpacing:     optional(constants.SettingBodyLetterSpacing),
		DialogueFontSize:      optional(constants.SettingDialogueFontSize),
		DialogueLetterSpacing: optional(constants.SettingDialogueLetterSpacing),
		CustomFontSize:        optional(constants.SettingCustomFontSize),
		CustomLetterSpacing:   optional(constants.SettingCustomLetterSpacing),
		LocaleFontSize:        optional(constants.SettingLocaleFontSize),
		LocaleLetterSpacing:   optional(constants.SettingLocaleLetterSpacing),
	}
}

type formValue struct {
	key   string
	value any
}

// values pairs every form value with its setting key, in form order.
func (fm *DisplayFormModel) values() []formValue {
	return []formValue{
		{constants.SettingStreamRenderMode, fm.RenderMode},
		{constants.SettingStreamAnimEffect, fm.AnimEffect},
		{constants.SettingStreamAnimSpeed, fm.AnimSpeed},
		{constants.SettingStreamAnimCursor, fm.Cursor},
		{constants.SettingStreamAnimCursorShape, fm.CursorShape},
		{constants.SettingStreamAnimCursorAnim, fm.CursorAnim},
		{constants.SettingStreamAnimCursorImageURL, fm.CursorImage},
		{constants.SettingBodyFontSize, fm.BodyFontSize},
		{constants.SettingBodyLetterSpacing, fm.BodyLetterSpacing},
		{constants.SettingDialogueFontSize, fm.DialogueFontSize},
		{constants.SettingDialogueLetterSpacing, fm.DialogueLetterSpacing},
		{constants.SettingCustomFontSize, fm.CustomFontSize},
		{constants.SettingCustomLetterSpacing, fm.CustomLetterSpacing},
		{constants.SettingLocaleFontSize, fm.LocaleFontSize},
		{constants.SettingLocaleLetterSpacing, fm.LocaleLetterSpacing},
	}
}

// Apply writes the form values through the settings normalizers and returns the keys whose
// stored value changed.
func (fm *DisplayFormModel) Apply(store *settings.Store) ([]string, error) {
	var changed []string
	for _, fv := range fm.values() {
		before, _ := store.Get(fv.key)
		after, err := settings.NormalizeInput(fv.key, fv.value)
		if err != nil {
			return changed, err
		}
		if fmt.Sprint(before) == fmt.Sprint(after) {
			continue
		}
		if _, err := store.Set(fv.key, fv.value); err != nil {
			return changed, err
		}
		changed = append(changed, fv.key)
	}
	return changed, nil
}

// ValidateSpeed accepts 0 or any number; out-of-range values are clamped on save.
func ValidateSpeed(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("speed must be a number (0 follows the stream)")
	}
	return nil
}

// ValidateOptionalNumber accepts blank input or anything with a numeric prefix.
func ValidateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := settings.ParseOptionalNumber(s); !ok {
		return fmt.Errorf("enter a number or leave blank")
	}
	return nil
}

func options(values []string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		out = append(out, huh.NewOption(v, v))
	}
	return out
}

func clampHint(key string) string {
	v, _ := settings.DefaultValue(key)
	if v == nil {
		return "blank to unset"
	}
	return fmt.Sprintf("default %v", v)
}

func sizeInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%g-%g px, blank to unset", constants.FontSizeMin, constants.FontSizeMax)).
		Value(value).
		Validate(ValidateOptionalNumber)
}

func spacingInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%g to %g em, blank to unset", constants.LetterSpacingMin, constants.LetterSpacingMax)).
		Value(value).
		Validate(ValidateOptionalNumber)
}

// NewDisplayForm builds the interactive form over fm.
func NewDisplayForm(fm *DisplayFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Render mode").
				Options(options(constants.RenderModes)...).
				Value(&fm.RenderMode),
			huh.NewSelect[string]().
				Title("Animation effect").
				Options(options(constants.AnimEffects)...).
				Value(&fm.AnimEffect),
			huh.NewInput().
				Title("Animation speed (ms per character)").
				Description(fmt.Sprintf("%d-%d, higher is slower, 0 follows the stream, %s",
					constants.StreamAnimSpeedMin, constants.StreamAnimSpeedMax,
					clampHint(constants.SettingStreamAnimSpeed))).
				Value(&fm.AnimSpeed).
				Validate(ValidateSpeed),
		).Title("Streaming"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show cursor").
				Value(&fm.Cursor),
			huh.NewSelect[string]().
				Title("Cursor shape").
				Options(options(constants.CursorShapes)...).
				Value(&fm.CursorShape),
			huh.NewSelect[string]().
				Title("Cursor animation").
				Options(options(constants.CursorAnims)...).
				Value(&fm.CursorAnim),
			huh.NewInput().
				Title("Cursor image URL").
				Description("Used when the shape is image").
				Value(&fm.CursorImage),
		).Title("Cursor"),
		huh.NewGroup(
			sizeInput("Body font size", &fm.BodyFontSize),
			spacingInput("Body letter spacing", &fm.BodyLetterSpacing),
			sizeInput("Dialogue font size", &fm.DialogueFontSize),
			spacingInput("Dialogue letter spacing", &fm.DialogueLetterSpacing),
		).Title("Body & dialogue"),
		huh.NewGroup(
			sizeInput("Custom font size", &fm.CustomFontSize),
			spacingInput("Custom letter spacing", &fm.CustomLetterSpacing),
			sizeInput("Locale font size", &fm.LocaleFontSize),
			spacingInput("Locale letter spacing", &fm.LocaleLetterSpacing),
		).Title("Custom & locale"),
	).WithTheme(huh.ThemeDracula())
}
