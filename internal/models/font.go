package models

// FontDescriptor is an imported web font. Two descriptors are the same font when either
// the ID or the Family matches.
type FontDescriptor struct {
	ID     string `json:"id" mapstructure:"id"`
	Family string `json:"family" mapstructure:"family"`
	CSSURL string `json:"cssUrl" mapstructure:"cssUrl"`
	Kind   string `json:"kind" mapstructure:"kind"`
}

// Matches reports whether f and other identify the same font.
func (f FontDescriptor) Matches(other FontDescriptor) bool {
	if f.ID != "" && f.ID == other.ID {
		return true
	}
	return f.Family != "" && f.Family == other.Family
}

// ToMap returns the persisted shape of f.
func (f FontDescriptor) ToMap() map[string]any {
	return map[string]any{
		"id":     f.ID,
		"family": f.Family,
		"cssUrl": f.CSSURL,
		"kind":   f.Kind,
	}
}

// LocaleFontRule applies Family to text detected as Locale.
type LocaleFontRule struct {
	ID     string `json:"id" mapstructure:"id"`
	Locale string `json:"locale" mapstructure:"locale"`
	Family string `json:"family" mapstructure:"family"`
}

// ToMap returns the persisted shape of r.
func (r LocaleFontRule) ToMap() map[string]any {
	return map[string]any{
		"id":     r.ID,
		"locale": r.Locale,
		"family": r.Family,
	}
}
