package settings

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrNotSettable    = errors.New("setting cannot be set directly")
	ErrFontExists     = errors.New("font already imported")
	ErrFontNotFound   = errors.New("font not found")
	ErrInvalidFont    = errors.New("font needs a family and a CSS URL")
	ErrRuleNotFound   = errors.New("locale rule not found")
	ErrInvalidRule    = errors.New("locale rule needs a locale and a family")
)

// FieldError ties a setter failure to the setting key.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
