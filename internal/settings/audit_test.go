package settings

import (
	"reflect"
	"testing"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

func TestAudit(t *testing.T) {
	cfg := models.Config{
		constants.SettingStreamAnimSpeed: float64(500),
		constants.SettingLocaleFonts:     "zh=Noto Sans SC",
		constants.SettingCustomFont:      "Foo",
		constants.SettingCustomFontOpen:  "<",
		constants.SettingCustomFontClose: ">",
	}
	before := cloneValue(cfg).(models.Config)

	issues := Audit(cfg)
	if !reflect.DeepEqual(cfg, before) {
		t.Fatal("Audit modified its input")
	}

	byKey := map[string]Issue{}
	for _, issue := range issues {
		byKey[issue.Key] = issue
	}
	if issue, ok := byKey[constants.SettingStreamAnimSpeed]; !ok || issue.Want != constants.StreamAnimSpeedMax {
		t.Errorf("speed issue = %+v", issue)
	}
	if _, ok := byKey[constants.SettingLocaleFonts]; !ok {
		t.Error("expected localeFonts issue")
	}
	if issue := byKey[constants.SettingCustomFontWrapEnabled]; issue.Want != true {
		t.Errorf("wrap issue = %+v, want derived true", issue)
	}
	if issue, ok := byKey[constants.SettingImportedFonts]; !ok || issue.Want != len(Presets()) {
		t.Errorf("presets issue = %+v", issue)
	}
}

func TestAudit_MigratedConfigIsClean(t *testing.T) {
	cfg := models.Config{}
	InitializeAndMigrate(cfg)
	if issues := Audit(cfg); len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
	if issues := Audit(nil); len(issues) == 0 {
		t.Error("expected a nil config to report missing defaults")
	}
}
