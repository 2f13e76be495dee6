package model

import (
	"fmt"
	"strings"
)

// LooseBool is a bool query parameter with a wider accepted token set
// than strconv.ParseBool: case-insensitive 1/true/on/yes parse to true
// and 0/false/off/no parse to false. Anything else is a binding error,
// surfaced to the client as a validation failure.
type LooseBool bool

// UnmarshalParam implements echo.BindUnmarshaler so LooseBool fields
// bind directly from query/path parameters.
func (b *LooseBool) UnmarshalParam(param string) error {
	switch strings.ToLower(param) {
	case "1", "true", "on", "yes":
		*b = true
	case "0", "false", "off", "no":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q", param)
	}
	return nil
}

// Bool returns the plain bool value.
func (b LooseBool) Bool() bool {
	return bool(b)
}
