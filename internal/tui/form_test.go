package tui

import (
	"reflect"
	"testing"

	"github.com/julianstephens/nyfont/internal/models"
	"github.com/julianstephens/nyfont/internal/settings"
)

func migratedStore(t *testing.T, raw models.Config) *settings.Store {
	t.Helper()
	store := settings.New(raw)
	store.InitializeAndMigrate()
	return store
}

func TestNewDisplayFormModel(t *testing.T) {
	store := migratedStore(t, models.Config{
		"streamRenderMode":      "BUFFER",
		"streamAnimSpeed":       "0",
		"bodyFontSize":          15.5,
		"dialogueLetterSpacing": -0.05,
		"streamAnimCursorShape": "image",
	})

	fm := NewDisplayFormModel(store)
	want := &DisplayFormModel{
		RenderMode:            "buffer",
		AnimEffect:            "none",
		AnimSpeed:             "0",
		Cursor:                true,
		CursorShape:           "image",
		CursorAnim:            "blink",
		BodyFontSize:          "15.5",
		DialogueLetterSpacing: "-0.05",
	}
	if !reflect.DeepEqual(fm, want) {
		t.Errorf("NewDisplayFormModel() = %+v, want %+v", fm, want)
	}
}

func TestDisplayFormModel_Apply(t *testing.T) {
	var saves int
	store := migratedStore(t, models.Config{})
	store.OnChange(func() { saves++ })

	fm := NewDisplayFormModel(store)
	changed, err := fm.Apply(store)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 0 || saves != 0 {
		t.Fatalf("unchanged form reported changes %v (%d saves)", changed, saves)
	}

	fm.AnimSpeed = "120"
	fm.CustomFontSize = "100"
	fm.LocaleLetterSpacing = "0.333"
	fm.Cursor = false
	changed, err = fm.Apply(store)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	wantChanged := []string{"streamAnimSpeed", "streamAnimCursor", "customFontSize", "localeLetterSpacing"}
	if !reflect.DeepEqual(changed, wantChanged) {
		t.Errorf("changed = %v, want %v", changed, wantChanged)
	}
	if saves != len(wantChanged) {
		t.Errorf("expected %d change notifications, got %d", len(wantChanged), saves)
	}

	if got := store.CurrentAnimSpeed(); got != 80 {
		t.Errorf("speed = %d, want 80", got)
	}
	if v, _ := store.Get("customFontSize"); v != 72.0 {
		t.Errorf("customFontSize = %v, want 72", v)
	}
	if v, _ := store.Get("localeLetterSpacing"); v != 0.33 {
		t.Errorf("localeLetterSpacing = %v, want 0.33", v)
	}
}

func TestValidators(t *testing.T) {
	for _, s := range []string{"0", "20", " 3 ", "500", "-4"} {
		if err := ValidateSpeed(s); err != nil {
			t.Errorf("ValidateSpeed(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "fast", "12px"} {
		if err := ValidateSpeed(s); err == nil {
			t.Errorf("ValidateSpeed(%q) = nil, want error", s)
		}
	}
	for _, s := range []string{"", "  ", "14", "14px", "-0.1"} {
		if err := ValidateOptionalNumber(s); err != nil {
			t.Errorf("ValidateOptionalNumber(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"px14", "big"} {
		if err := ValidateOptionalNumber(s); err == nil {
			t.Errorf("ValidateOptionalNumber(%q) = nil, want error", s)
		}
	}
}

func TestNewDisplayFormBuilds(t *testing.T) {
	fm := NewDisplayFormModel(migratedStore(t, models.Config{}))
	if form := NewDisplayForm(fm); form == nil {
		t.Fatal("NewDisplayForm returned nil")
	}
}

func TestStatusLines(t *testing.T) {
	if got := Status(true, "Storage reachable", ""); got == "" {
		t.Error("Status returned empty line")
	}
	if got := Warn("Settings", "2 issue(s)"); got == "" {
		t.Error("Warn returned empty line")
	}
}
