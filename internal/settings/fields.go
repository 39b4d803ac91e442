package settings

import (
	"github.com/julianstephens/nyfont/internal/constants"
)

type fieldKind int

const (
	kindBool fieldKind = iota
	kindString
	kindEnum
	kindInt
	kindOptionalNumber
	kindList
	kindMarker
)

func (k fieldKind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindString:
		return "string"
	case kindEnum:
		return "enum"
	case kindInt:
		return "int"
	case kindOptionalNumber:
		return "number"
	case kindList:
		return "list"
	case kindMarker:
		return "marker"
	}
	return "unknown"
}

type field struct {
	kind fieldKind
	// onLoad re-normalizes a stored value during migration; nil leaves the value as stored.
	onLoad func(any) any
	// onInput validates a user-supplied value before writeback; nil means the field is not
	// settable through Set.
	onInput func(any) any
	// allowed lists enum members for help output.
	allowed []string
}

func boolInput(v any) any   { return NormalizeBool(v) }
func stringInput(v any) any { return NormalizeString(v) }

func boolField() field {
	return field{kind: kindBool, onLoad: boolInput, onInput: boolInput}
}

func stringField() field {
	return field{kind: kindString, onLoad: stringInput, onInput: stringInput}
}

func enumField(allowed []string, normalize func(any) string) field {
	fn := func(v any) any { return normalize(v) }
	return field{kind: kindEnum, onLoad: fn, onInput: fn, allowed: allowed}
}

func fontSizeField() field {
	fn := func(v any) any { return OptionalValue(ClampOptionalFontSize(v)) }
	return field{kind: kindOptionalNumber, onLoad: fn, onInput: fn}
}

func letterSpacingField() field {
	fn := func(v any) any { return OptionalValue(ClampOptionalLetterSpacing(v)) }
	return field{kind: kindOptionalNumber, onLoad: fn, onInput: fn}
}

var fields = map[string]field{
	constants.SettingFontsEnabled:          boolField(),
	constants.SettingGlobalFont:            stringField(),
	constants.SettingBodyFont:              stringField(),
	constants.SettingDialogueFont:          stringField(),
	constants.SettingCustomFont:            stringField(),
	constants.SettingCustomFontOpen:        stringField(),
	constants.SettingCustomFontClose:       stringField(),
	constants.SettingCustomFontWrapEnabled: boolField(),
	constants.SettingLocaleFontEnabled:     boolField(),
	constants.SettingLocaleFonts:           {kind: kindList},
	constants.SettingImportedFonts:         {kind: kindList},
	constants.SettingChatFontImportEnabled: boolField(),

	constants.SettingBodyFontSize:          fontSizeField(),
	constants.SettingBodyLetterSpacing:     letterSpacingField(),
	constants.SettingDialogueFontSize:      fontSizeField(),
	constants.SettingDialogueLetterSpacing: letterSpacingField(),
	constants.SettingCustomFontSize:        fontSizeField(),
	constants.SettingCustomLetterSpacing:   letterSpacingField(),
	constants.SettingLocaleFontSize:        fontSizeField(),
	constants.SettingLocaleLetterSpacing:   letterSpacingField(),

	constants.SettingStreamRenderMode:      enumField(constants.RenderModes, NormalizeStreamRenderMode),
	constants.SettingStreamAnimEffect:      enumField(constants.AnimEffects, NormalizeStreamAnimEffect),
	constants.SettingStreamAnimCursorShape: enumField(constants.CursorShapes, NormalizeStreamCursorShape),
	constants.SettingStreamAnimCursorAnim:  enumField(constants.CursorAnims, NormalizeStreamCursorAnim),
	constants.SettingStreamAnimSpeed: {
		kind:    kindInt,
		onLoad:  func(v any) any { return ClampStreamAnimSpeed(v) },
		onInput: func(v any) any { return ClampStreamAnimSpeed(v) },
	},
	constants.SettingStreamAnimCursor: {
		kind:    kindBool,
		onLoad:  func(v any) any { return Truthy(v) },
		onInput: boolInput,
	},
	constants.SettingStreamAnimCursorImageURL: {
		kind:    kindString,
		onLoad:  func(v any) any { return NormalizeCursorImageURL(v) },
		onInput: func(v any) any { return NormalizeCursorImageURL(v) },
	},

	constants.SettingPresetsVersion: {kind: kindMarker},
}

// FieldInfo describes a recognized setting for help and listing output.
type FieldInfo struct {
	Key      string
	Kind     string
	Settable bool
	Allowed  []string
}

// Fields lists every recognized setting in canonical order.
func Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(defaultSettings))
	for _, key := range Keys() {
		f := fields[key]
		out = append(out, FieldInfo{
			Key:      key,
			Kind:     f.kind.String(),
			Settable: f.onInput != nil,
			Allowed:  f.allowed,
		})
	}
	return out
}

// NormalizeInput validates a user-supplied value for key and returns the value that would
// be stored.
func NormalizeInput(key string, value any) (any, error) {
	f, ok := fields[key]
	if !ok {
		return nil, &FieldError{Key: key, Err: ErrUnknownSetting}
	}
	if f.onInput == nil {
		return nil, &FieldError{Key: key, Err: ErrNotSettable}
	}
	return f.onInput(value), nil
}
