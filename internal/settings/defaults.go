package settings

import (
	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

type defaultEntry struct {
	key   string
	value any
}

// defaultSettings is the canonical default table, in persisted key order.
var defaultSettings = []defaultEntry{
	{constants.SettingFontsEnabled, constants.DefaultFontsEnabled},
	{constants.SettingGlobalFont, ""},
	{constants.SettingBodyFont, ""},
	{constants.SettingDialogueFont, ""},
	{constants.SettingCustomFont, ""},
	{constants.SettingCustomFontOpen, ""},
	{constants.SettingCustomFontClose, ""},
	{constants.SettingCustomFontWrapEnabled, constants.DefaultCustomFontWrapEnabled},
	{constants.SettingLocaleFontEnabled, constants.DefaultLocaleFontEnabled},
	{constants.SettingLocaleFonts, []any{}},
	{constants.SettingImportedFonts, []any{}},
	{constants.SettingChatFontImportEnabled, constants.DefaultChatFontImportEnabled},
	{constants.SettingBodyFontSize, nil},
	{constants.SettingBodyLetterSpacing, nil},
	{constants.SettingDialogueFontSize, nil},
	{constants.SettingDialogueLetterSpacing, nil},
	{constants.SettingCustomFontSize, nil},
	{constants.SettingCustomLetterSpacing, nil},
	{constants.SettingLocaleFontSize, nil},
	{constants.SettingLocaleLetterSpacing, nil},
	{constants.SettingStreamRenderMode, constants.DefaultStreamRenderMode},
	{constants.SettingStreamAnimEffect, constants.DefaultStreamAnimEffect},
	{constants.SettingStreamAnimSpeed, constants.DefaultStreamAnimSpeed},
	{constants.SettingStreamAnimCursor, constants.DefaultStreamAnimCursor},
	{constants.SettingStreamAnimCursorShape, constants.DefaultStreamCursorShape},
	{constants.SettingStreamAnimCursorAnim, constants.DefaultStreamCursorAnim},
	{constants.SettingStreamAnimCursorImageURL, ""},
	{constants.SettingPresetsVersion, constants.DefaultPresetsVersion},
}

// presetFonts is the built-in catalog registered by the preset migration, in order.
var presetFonts = []models.FontDescriptor{
	{ID: "preset_zcool_kuaile", Family: "ZCOOL KuaiLe", CSSURL: "https://fonts.googleapis.com/css2?family=ZCOOL+KuaiLe&display=swap"},
	{ID: "preset_zcool_xiaowei", Family: "ZCOOL XiaoWei", CSSURL: "https://fonts.googleapis.com/css2?family=ZCOOL+XiaoWei&display=swap"},
	{ID: "preset_zcool_qingke_huangyou", Family: "ZCOOL QingKe HuangYou", CSSURL: "https://fonts.googleapis.com/css2?family=ZCOOL+QingKe+HuangYou&display=swap"},
	{ID: "preset_long_cang", Family: "Long Cang", CSSURL: "https://fonts.googleapis.com/css2?family=Long+Cang&display=swap"},
	{ID: "preset_ma_shan_zheng", Family: "Ma Shan Zheng", CSSURL: "https://fonts.googleapis.com/css2?family=Ma+Shan+Zheng&display=swap"},
	{ID: "preset_zhi_mang_xing", Family: "Zhi Mang Xing", CSSURL: "https://fonts.googleapis.com/css2?family=Zhi+Mang+Xing&display=swap"},
	{ID: "preset_liu_jian_mao_cao", Family: "Liu Jian Mao Cao", CSSURL: "https://fonts.googleapis.com/css2?family=Liu+Jian+Mao+Cao&display=swap"},
	{ID: "preset_silkscreen", Family: "Silkscreen", CSSURL: "https://fonts.googleapis.com/css2?family=Silkscreen&display=swap"},
	{ID: "preset_press_start_2p", Family: "Press Start 2P", CSSURL: "https://fonts.googleapis.com/css2?family=Press+Start+2P&display=swap"},
	{ID: "preset_dotgothic16", Family: "DotGothic16", CSSURL: "https://fonts.googleapis.com/css2?family=DotGothic16&display=swap"},
	{ID: "preset_gaegu", Family: "Gaegu", CSSURL: "https://fonts.googleapis.com/css2?family=Gaegu&display=swap"},
	{ID: "preset_gamja_flower", Family: "Gamja Flower", CSSURL: "https://fonts.googleapis.com/css2?family=Gamja+Flower&display=swap"},
	{ID: "preset_single_day", Family: "Single Day", CSSURL: "https://fonts.googleapis.com/css2?family=Single+Day&display=swap"},
	{ID: "preset_mea_culpa", Family: "Mea Culpa", CSSURL: "https://fonts.googleapis.com/css2?family=Mea+Culpa&display=swap"},
	// The space is part of an ID already written to existing stores.
	{ID: "preset_Tiejili SC", Family: "Tiejili SC", CSSURL: "https://fontsapi.zeoseven.com/100/main/result.css"},
	{ID: "preset_boutique_bitmap_9x9", Family: "BoutiqueBitmap9x9", CSSURL: "https://fontsapi.zeoseven.com/65/main/result.css"},
}

// Presets returns the built-in font catalog in registration order.
func Presets() []models.FontDescriptor {
	out := make([]models.FontDescriptor, len(presetFonts))
	for i, p := range presetFonts {
		p.Kind = constants.FontKindCSS
		out[i] = p
	}
	return out
}

// Defaults returns a fresh copy of the canonical default configuration.
func Defaults() models.Config {
	cfg := make(models.Config, len(defaultSettings))
	for _, d := range defaultSettings {
		cfg[d.key] = cloneValue(d.value)
	}
	return cfg
}

// DefaultValue returns a fresh copy of the default for key.
func DefaultValue(key string) (any, bool) {
	for _, d := range defaultSettings {
		if d.key == key {
			return cloneValue(d.value), true
		}
	}
	return nil, false
}

// Keys returns every recognized setting key in canonical order.
func Keys() []string {
	keys := make([]string, len(defaultSettings))
	for i, d := range defaultSettings {
		keys[i] = d.key
	}
	return keys
}

// cloneValue deep-copies sequences and mappings so defaults are never aliased into a live
// configuration. Scalars are returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case models.Config:
		out := make(models.Config, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	}
	return v
}
