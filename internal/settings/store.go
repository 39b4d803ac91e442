package settings

import (
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/models"
)

// Store owns one live configuration mapping. It is not safe for concurrent use; a single
// writer is expected. Call InitializeAndMigrate before any accessor.
type Store struct {
	raw      models.Config
	onChange func()
}

// New wraps raw, which is mutated in place for the lifetime of the store. A nil raw starts
// from an empty mapping.
func New(raw models.Config) *Store {
	if raw == nil {
		raw = models.Config{}
	}
	return &Store{raw: raw}
}

// OnChange registers fn to run after every mutation, typically a debounced save.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// InitializeAndMigrate migrates the wrapped mapping. See the package-level function.
func (s *Store) InitializeAndMigrate() Report {
	report := InitializeAndMigrate(s.raw)
	if report.Changed() {
		logger.Debug("Settings migrated",
			"defaulted", len(report.Defaulted),
			"normalized", report.Normalized,
			"repaired", report.Repaired,
			"wrapDerived", report.WrapDerived,
			"presetsAdded", len(report.PresetsAdded))
	}
	return report
}

// Raw returns the live mapping, suitable for handing to a storage provider.
func (s *Store) Raw() models.Config {
	return s.raw
}

// Snapshot returns a typed copy of the current settings. List entries that do not parse
// are skipped, as in ImportedFonts and LocaleRules.
func (s *Store) Snapshot() (models.Settings, error) {
	scalars := maps.Clone(s.raw)
	delete(scalars, constants.SettingImportedFonts)
	delete(scalars, constants.SettingLocaleFonts)
	out, err := models.DecodeSettings(scalars)
	if err != nil {
		return out, err
	}
	out.ImportedFonts = s.ImportedFonts()
	out.LocaleFonts = s.LocaleRules()
	return out, nil
}

func (s *Store) CurrentRenderMode() string {
	return NormalizeStreamRenderMode(s.raw[constants.SettingStreamRenderMode])
}

func (s *Store) CurrentAnimEffect() string {
	return NormalizeStreamAnimEffect(s.raw[constants.SettingStreamAnimEffect])
}

// CurrentAnimSpeed returns the per-character delay in ms. A missing key reads as the
// default; a stored null reads as sync.
func (s *Store) CurrentAnimSpeed() int {
	v, ok := s.raw[constants.SettingStreamAnimSpeed]
	if !ok {
		return constants.DefaultStreamAnimSpeed
	}
	return ClampStreamAnimSpeed(v)
}

// IsSyncSpeed reports whether the animation follows the incoming stream cadence.
func (s *Store) IsSyncSpeed() bool {
	return s.CurrentAnimSpeed() == 0
}

func (s *Store) CurrentCursorShape() string {
	return NormalizeStreamCursorShape(s.raw[constants.SettingStreamAnimCursorShape])
}

func (s *Store) CurrentCursorAnim() string {
	return NormalizeStreamCursorAnim(s.raw[constants.SettingStreamAnimCursorAnim])
}

// Get returns the stored value for key as is.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.raw[key]
	return v, ok
}

// Set normalizes value for key and stores it, returning the stored value.
func (s *Store) Set(key string, value any) (any, error) {
	normalized, err := NormalizeInput(key, value)
	if err != nil {
		return nil, err
	}
	s.raw[key] = normalized
	s.changed()
	return normalized, nil
}

// Reset restores the default for key.
func (s *Store) Reset(key string) (any, error) {
	if _, ok := fields[key]; !ok {
		return nil, &FieldError{Key: key, Err: ErrUnknownSetting}
	}
	if key == constants.SettingPresetsVersion {
		return nil, &FieldError{Key: key, Err: ErrNotSettable}
	}
	v, _ := DefaultValue(key)
	s.raw[key] = v
	s.changed()
	return v, nil
}

// ImportedFonts returns the imported fonts that have a family. Entries of any other shape
// are kept in storage but skipped here.
func (s *Store) ImportedFonts() []models.FontDescriptor {
	list, _ := asList(s.raw[constants.SettingImportedFonts])
	out := make([]models.FontDescriptor, 0, len(list))
	for _, entry := range list {
		f := fontFromEntry(entry)
		if f.Family == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// AddImportedFont registers f. A missing ID is generated and a missing kind defaults to css.
// Fonts matching an existing entry by ID or family are rejected with ErrFontExists.
func (s *Store) AddImportedFont(f models.FontDescriptor) (models.FontDescriptor, error) {
	f.Family = strings.TrimSpace(f.Family)
	f.CSSURL = strings.TrimSpace(f.CSSURL)
	f.ID = strings.TrimSpace(f.ID)
	if f.Family == "" || f.CSSURL == "" {
		return models.FontDescriptor{}, ErrInvalidFont
	}
	if f.ID == "" {
		f.ID = constants.FontIDPrefix + uuid.NewString()
	}
	if f.Kind == "" {
		f.Kind = constants.FontKindCSS
	}

	list, _ := asList(s.raw[constants.SettingImportedFonts])
	if containsFont(list, f) {
		return models.FontDescriptor{}, ErrFontExists
	}
	s.raw[constants.SettingImportedFonts] = append(list, f.ToMap())
	s.changed()
	return f, nil
}

// RemoveImportedFont removes the first font whose ID or family equals idOrFamily.
func (s *Store) RemoveImportedFont(idOrFamily string) (models.FontDescriptor, error) {
	idOrFamily = strings.TrimSpace(idOrFamily)
	list, _ := asList(s.raw[constants.SettingImportedFonts])
	for i, entry := range list {
		if entryField(entry, "id") != idOrFamily && entryField(entry, "family") != idOrFamily {
			continue
		}
		removed := fontFromEntry(entry)
		out := make([]any, 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		s.raw[constants.SettingImportedFonts] = out
		s.changed()
		return removed, nil
	}
	return models.FontDescriptor{}, ErrFontNotFound
}

// LocaleRules returns the locale font rules in order.
func (s *Store) LocaleRules() []models.LocaleFontRule {
	list, _ := asList(s.raw[constants.SettingLocaleFonts])
	out := make([]models.LocaleFontRule, 0, len(list))
	for _, entry := range list {
		r := models.LocaleFontRule{
			ID:     textField(entry, "id"),
			Locale: textField(entry, "locale"),
			Family: textField(entry, "family"),
		}
		if r.Locale == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AddLocaleRule appends a rule applying family to locale.
func (s *Store) AddLocaleRule(locale, family string) (models.LocaleFontRule, error) {
	r := models.LocaleFontRule{
		Locale: strings.ToLower(strings.TrimSpace(locale)),
		Family: strings.TrimSpace(family),
	}
	if r.Locale == "" || r.Family == "" {
		return models.LocaleFontRule{}, ErrInvalidRule
	}
	r.ID = constants.LocaleIDPrefix + uuid.NewString()

	list, _ := asList(s.raw[constants.SettingLocaleFonts])
	s.raw[constants.SettingLocaleFonts] = append(list, r.ToMap())
	s.changed()
	return r, nil
}

// RemoveLocaleRule removes every rule whose ID or locale equals idOrLocale.
func (s *Store) RemoveLocaleRule(idOrLocale string) (int, error) {
	idOrLocale = strings.TrimSpace(idOrLocale)
	list, _ := asList(s.raw[constants.SettingLocaleFonts])
	out := make([]any, 0, len(list))
	for _, entry := range list {
		if entryField(entry, "id") == idOrLocale || entryField(entry, "locale") == strings.ToLower(idOrLocale) {
			continue
		}
		out = append(out, entry)
	}
	removed := len(list) - len(out)
	if removed == 0 {
		return 0, ErrRuleNotFound
	}
	s.raw[constants.SettingLocaleFonts] = out
	s.changed()
	return removed, nil
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func textField(entry any, key string) string {
	v := entryField(entry, key)
	if v == absentField {
		return ""
	}
	return v
}

func fontFromEntry(entry any) models.FontDescriptor {
	return models.FontDescriptor{
		ID:     textField(entry, "id"),
		Family: textField(entry, "family"),
		CSSURL: textField(entry, "cssUrl"),
		Kind:   textField(entry, "kind"),
	}
}
