package settings

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

// Report describes what InitializeAndMigrate changed.
type Report struct {
	Defaulted    []string // keys inserted from the default table
	Normalized   []string // keys whose stored value was coerced into range
	Repaired     []string // list keys replaced because they were not sequences
	WrapDerived  bool     // customFontWrapEnabled was inferred on this run
	PresetsAdded []string // preset families appended to importedFonts
}

// Changed reports whether the migration modified the configuration.
func (r Report) Changed() bool {
	return len(r.Defaulted) > 0 || len(r.Normalized) > 0 || len(r.Repaired) > 0 ||
		r.WrapDerived || len(r.PresetsAdded) > 0
}

// InitializeAndMigrate fills in missing defaults, re-normalizes stored values and applies
// one-way migrations to cfg in place. It never fails. It must run once, before any code
// reads cfg; running it again is a no-op.
func InitializeAndMigrate(cfg models.Config) Report {
	var report Report
	if cfg == nil {
		return report
	}

	// Presence is captured before defaulting so one-time derivations can tell a first run
	// from a stored value.
	_, hadWrapEnabled := cfg[constants.SettingCustomFontWrapEnabled]

	for _, d := range defaultSettings {
		if _, ok := cfg[d.key]; !ok {
			cfg[d.key] = cloneValue(d.value)
			report.Defaulted = append(report.Defaulted, d.key)
		}
	}

	for _, key := range Keys() {
		f := fields[key]
		if f.onLoad == nil {
			continue
		}
		before := cfg[key]
		after := f.onLoad(before)
		if !sameValue(before, after) {
			report.Normalized = append(report.Normalized, key)
		}
		cfg[key] = after
	}

	if !hadWrapEnabled {
		cfg[constants.SettingCustomFontWrapEnabled] = hasText(cfg[constants.SettingCustomFont]) &&
			hasText(cfg[constants.SettingCustomFontOpen]) &&
			hasText(cfg[constants.SettingCustomFontClose])
		report.WrapDerived = true
	}

	for _, key := range []string{constants.SettingImportedFonts, constants.SettingLocaleFonts} {
		list, ok := asList(cfg[key])
		if !ok {
			report.Repaired = append(report.Repaired, key)
		}
		cfg[key] = list
	}

	version := presetsVersion(cfg[constants.SettingPresetsVersion])
	if version >= constants.CurrentPresetsVersion {
		if marker, ok := numericMarker(cfg[constants.SettingPresetsVersion], version); ok {
			cfg[constants.SettingPresetsVersion] = marker
			report.Normalized = append(report.Normalized, constants.SettingPresetsVersion)
		}
	} else {
		fonts := cfg[constants.SettingImportedFonts].([]any)
		for _, preset := range Presets() {
			if containsFont(fonts, preset) {
				continue
			}
			fonts = append(fonts, preset.ToMap())
			report.PresetsAdded = append(report.PresetsAdded, preset.Family)
		}
		cfg[constants.SettingImportedFonts] = fonts
		cfg[constants.SettingPresetsVersion] = constants.CurrentPresetsVersion
	}

	return report
}

func hasText(v any) bool {
	return strings.TrimSpace(falsyString(v)) != ""
}

// presetsVersion reads the migration marker; anything non-numeric counts as never migrated.
func presetsVersion(v any) float64 {
	num, ok := toNumber(v)
	if !ok || math.IsNaN(num) {
		return 0
	}
	return num
}

// numericMarker returns the number to store for a textual marker such as "3". The second
// result is false when v is already numeric.
func numericMarker(v any, version float64) (any, bool) {
	switch v.(type) {
	case string, json.Number:
	default:
		return nil, false
	}
	if version == math.Trunc(version) && version <= math.MaxInt32 {
		return int(version), true
	}
	return version, true
}

// asList returns v as a []any. The second result is false when v was not a sequence and an
// empty list was substituted.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return []any{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{}, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// containsFont reports whether any entry of fonts shares an ID or a family with f.
func containsFont(fonts []any, f models.FontDescriptor) bool {
	for _, entry := range fonts {
		if fontFromEntry(entry).Matches(f) {
			return true
		}
	}
	return false
}

const absentField = "\x00"

// entryField reads a string field from a list entry of unknown shape. Missing fields and
// non-string values read as a value no real ID or family can equal.
func entryField(entry any, key string) string {
	switch e := entry.(type) {
	case map[string]any:
		if s, ok := e[key].(string); ok {
			return s
		}
	case map[string]string:
		if s, ok := e[key]; ok {
			return s
		}
	case models.FontDescriptor:
		switch key {
		case "id":
			return e.ID
		case "family":
			return e.Family
		}
	case models.LocaleFontRule:
		switch key {
		case "id":
			return e.ID
		case "locale":
			return e.Locale
		case "family":
			return e.Family
		}
	}
	return absentField
}

// sameValue compares stored values, treating numbers of different Go types as equal when
// they hold the same value.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if _, isBool := a.(bool); !isBool {
		if _, isStr := a.(string); !isStr {
			x, okA := toNumber(a)
			y, okB := toNumber(b)
			if okA && okB {
				if _, bIsBool := b.(bool); !bIsBool {
					return x == y
				}
			}
		}
	}
	return reflect.DeepEqual(a, b)
}
