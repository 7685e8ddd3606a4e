package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*enumValue)(nil)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	value   string
	allowed []string
}

func newEnumValue(def string, allowed ...string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

// String implements pflag.Value.
func (e *enumValue) String() string {
	return e.value
}

// Set implements pflag.Value.
func (e *enumValue) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of: %s", e.Allowed())
	}
	e.value = v
	return nil
}

// Type implements pflag.Value.
func (e *enumValue) Type() string {
	return "string"
}

// Allowed returns the accepted values as a comma separated list.
func (e *enumValue) Allowed() string {
	return strings.Join(e.allowed, ", ")
}
