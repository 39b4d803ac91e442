package settings

import (
	"fmt"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

// Issue is a stored value that migration would change.
type Issue struct {
	Key     string
	Stored  any
	Want    any
	Message string
}

// Audit reports what InitializeAndMigrate would change in cfg without touching it.
func Audit(cfg models.Config) []Issue {
	if cfg == nil {
		cfg = models.Config{}
	}
	trial := cloneValue(cfg).(models.Config)
	report := InitializeAndMigrate(trial)

	var issues []Issue
	for _, key := range report.Defaulted {
		issues = append(issues, Issue{Key: key, Want: trial[key], Message: "missing, default will be applied"})
	}
	for _, key := range report.Normalized {
		issues = append(issues, Issue{
			Key:     key,
			Stored:  cfg[key],
			Want:    trial[key],
			Message: fmt.Sprintf("stored value %#v will be normalized to %#v", cfg[key], trial[key]),
		})
	}
	for _, key := range report.Repaired {
		issues = append(issues, Issue{Key: key, Stored: cfg[key], Want: []any{}, Message: "not a list, will be reset"})
	}
	if report.WrapDerived {
		for i := range issues {
			if issues[i].Key == constants.SettingCustomFontWrapEnabled {
				issues[i].Want = trial[constants.SettingCustomFontWrapEnabled]
				issues[i].Message = "missing, will be derived from the custom font settings"
			}
		}
	}
	if len(report.PresetsAdded) > 0 {
		issues = append(issues, Issue{
			Key:     constants.SettingImportedFonts,
			Want:    len(report.PresetsAdded),
			Message: fmt.Sprintf("%d preset font(s) not registered yet", len(report.PresetsAdded)),
		})
	}
	return issues
}
