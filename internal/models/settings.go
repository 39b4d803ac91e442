package models

import (
	"github.com/go-viper/mapstructure/v2"
)

// Config is the persisted settings mapping. Keys the application does not recognize are
// carried through untouched so older and newer builds can share one store.
type Config map[string]any

// Settings is a typed, read-only view of a migrated Config.
type Settings struct {
	FontsEnabled          bool             `json:"fontsEnabled" mapstructure:"fontsEnabled"`
	GlobalFont            string           `json:"globalFont" mapstructure:"globalFont"`
	BodyFont              string           `json:"bodyFont" mapstructure:"bodyFont"`
	DialogueFont          string           `json:"dialogueFont" mapstructure:"dialogueFont"`
	CustomFont            string           `json:"customFont" mapstructure:"customFont"`
	CustomFontOpen        string           `json:"customFontOpen" mapstructure:"customFontOpen"`
	CustomFontClose       string           `json:"customFontClose" mapstructure:"customFontClose"`
	CustomFontWrapEnabled bool             `json:"customFontWrapEnabled" mapstructure:"customFontWrapEnabled"`
	LocaleFontEnabled     bool             `json:"localeFontEnabled" mapstructure:"localeFontEnabled"`
	LocaleFonts           []LocaleFontRule `json:"localeFonts" mapstructure:"localeFonts"`
	ImportedFonts         []FontDescriptor `json:"importedFonts" mapstructure:"importedFonts"`
	ChatFontImportEnabled bool             `json:"chatFontImportEnabled" mapstructure:"chatFontImportEnabled"`

	BodyFontSize          *float64 `json:"bodyFontSize" mapstructure:"bodyFontSize"`                   // px, nil defers to the computed style
	BodyLetterSpacing     *float64 `json:"bodyLetterSpacing" mapstructure:"bodyLetterSpacing"`         // em
	DialogueFontSize      *float64 `json:"dialogueFontSize" mapstructure:"dialogueFontSize"`           // px
	DialogueLetterSpacing *float64 `json:"dialogueLetterSpacing" mapstructure:"dialogueLetterSpacing"` // em
	CustomFontSize        *float64 `json:"customFontSize" mapstructure:"customFontSize"`               // px
	CustomLetterSpacing   *float64 `json:"customLetterSpacing" mapstructure:"customLetterSpacing"`     // em
	LocaleFontSize        *float64 `json:"localeFontSize" mapstructure:"localeFontSize"`               // px
	LocaleLetterSpacing   *float64 `json:"localeLetterSpacing" mapstructure:"localeLetterSpacing"`     // em

	StreamRenderMode         string `json:"streamRenderMode" mapstructure:"streamRenderMode"`
	StreamAnimEffect         string `json:"streamAnimEffect" mapstructure:"streamAnimEffect"`
	StreamAnimSpeed          int    `json:"streamAnimSpeed" mapstructure:"streamAnimSpeed"` // ms per char, 0 = sync
	StreamAnimCursor         bool   `json:"streamAnimCursor" mapstructure:"streamAnimCursor"`
	StreamAnimCursorShape    string `json:"streamAnimCursorShape" mapstructure:"streamAnimCursorShape"`
	StreamAnimCursorAnim     string `json:"streamAnimCursorAnim" mapstructure:"streamAnimCursorAnim"`
	StreamAnimCursorImageURL string `json:"streamAnimCursorImageUrl" mapstructure:"streamAnimCursorImageUrl"`

	PresetsVersion int `json:"presetsVersion" mapstructure:"presetsVersion"`
}

// DecodeSettings builds a typed view of cfg. Fields that cannot be decoded keep their zero
// value; callers are expected to have migrated cfg first.
func DecodeSettings(cfg Config) (Settings, error) {
	var out Settings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(map[string]any(cfg)); err != nil {
		return out, err
	}
	return out, nil
}
