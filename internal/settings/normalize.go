package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/julianstephens/nyfont/internal/constants"
)

// Every normalizer in this file is total: any input, including nil and values of the wrong
// type, maps to a valid result. Applying a normalizer to its own output returns it unchanged.

// NormalizeEnum trims and lower-cases value and returns it when it is one of allowed,
// otherwise def.
func NormalizeEnum(value any, allowed []string, def string) string {
	raw := strings.ToLower(strings.TrimSpace(falsyString(value)))
	if slices.Contains(allowed, raw) {
		return raw
	}
	return def
}

func NormalizeStreamRenderMode(value any) string {
	return NormalizeEnum(value, constants.RenderModes, constants.DefaultStreamRenderMode)
}

func NormalizeStreamAnimEffect(value any) string {
	return NormalizeEnum(value, constants.AnimEffects, constants.DefaultStreamAnimEffect)
}

func NormalizeStreamCursorShape(value any) string {
	return NormalizeEnum(value, constants.CursorShapes, constants.DefaultStreamCursorShape)
}

func NormalizeStreamCursorAnim(value any) string {
	return NormalizeEnum(value, constants.CursorAnims, constants.DefaultStreamCursorAnim)
}

// ClampInt coerces value to a number and clamps it to [lo, hi] after rounding.
// Non-numeric input yields fallback; nil, zero or negative input yields 0, the sync sentinel.
func ClampInt(value any, lo, hi, fallback int) int {
	if value == nil {
		return 0
	}
	num, ok := toNumber(value)
	if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
		return fallback
	}
	if num <= 0 {
		return 0
	}
	return int(math.Min(float64(hi), math.Max(float64(lo), roundHalfUp(num))))
}

// ClampStreamAnimSpeed returns the per-character animation delay in ms, or 0 for sync mode.
func ClampStreamAnimSpeed(value any) int {
	return ClampInt(value, constants.StreamAnimSpeedMin, constants.StreamAnimSpeedMax, constants.DefaultStreamAnimSpeed)
}

// ParseOptionalNumber reads an optional numeric setting. Strings are parsed by their
// leading numeric prefix so "14px" reads as 14. The second result is false when the value
// is unset or not a finite number.
func ParseOptionalNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	var num float64
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return 0, false
		}
		n, ok := parseFloatPrefix(s)
		if !ok {
			return 0, false
		}
		num = n
	} else {
		n, ok := toNumber(value)
		if !ok {
			return 0, false
		}
		num = n
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// ClampOptionalNumber clamps value to [lo, hi] and rounds it to the nearest step, ties
// rounding toward positive infinity. Unset or non-finite input returns nil, as does a
// non-positive value when rejectNonPositive is set.
func ClampOptionalNumber(value any, lo, hi, step float64, rejectNonPositive bool) *float64 {
	num, ok := ParseOptionalNumber(value)
	if !ok {
		return nil
	}
	if rejectNonPositive && num <= 0 {
		return nil
	}
	clamped := math.Min(hi, math.Max(lo, num))
	scale := math.Round(1 / step)
	out := roundHalfUp(clamped*scale) / scale
	if out == 0 {
		// drop negative zero
		out = 0
	}
	return &out
}

// ClampOptionalFontSize returns a font size in px, in 0.5px steps.
func ClampOptionalFontSize(value any) *float64 {
	return ClampOptionalNumber(value, constants.FontSizeMin, constants.FontSizeMax, constants.FontSizeStep, true)
}

// ClampOptionalLetterSpacing returns a letter spacing in em, in 0.01em steps.
func ClampOptionalLetterSpacing(value any) *float64 {
	return ClampOptionalNumber(value, constants.LetterSpacingMin, constants.LetterSpacingMax, constants.LetterSpacingStep, false)
}

// NormalizeString string-coerces and trims value. nil becomes "".
func NormalizeString(value any) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(stringify(value))
}

// NormalizeCursorImageURL trims the cursor image URL. URLs are otherwise opaque.
func NormalizeCursorImageURL(value any) string {
	return NormalizeString(value)
}

// Truthy reports whether value is truthy: nil, false, zero, NaN and "" are false,
// everything else is true.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	if num, ok := toNumber(value); ok {
		return num != 0 && !math.IsNaN(num)
	}
	return true
}

// NormalizeBool is the input-side boolean parser used by setters. It understands the usual
// textual spellings and falls back to Truthy for everything else.
func NormalizeBool(value any) bool {
	if s, ok := value.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes", "y", "on":
			return true
		case "false", "0", "no", "n", "off", "":
			return false
		}
	}
	return Truthy(value)
}

// OptionalValue converts a clamped optional number to its stored form.
func OptionalValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// falsyString coerces value to a string, treating every falsy value as "".
func falsyString(value any) string {
	if !Truthy(value) {
		return ""
	}
	return stringify(value)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toNumber mirrors numeric coercion of loosely typed settings. The second result is false
// when value has no numeric reading at all (nil, maps, slices).
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		return parseNumberString(v.String())
	case string:
		return parseNumberString(v)
	}
	return 0, false
}

// parseNumberString parses the whole of s as a number. Empty input is 0 and
// unparsable input is NaN.
func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return math.NaN(), true
		}
		return float64(n), true
	}
	if strings.ContainsAny(lower, "_in") {
		// reject Go-only spellings such as "1_000", "inf" and "nan"
		return math.NaN(), true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), true
	}
	return n, true
}

var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseFloatPrefix parses the longest numeric prefix of s after leading whitespace.
func parseFloatPrefix(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if m == "" {
		return 0, false
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
