package cleaning

import (
	"fmt"

	"cleanings/internal/pkg/errs"
)

// Type classifies a cleaning job. It is a closed, string-backed enumeration:
// values arrive as strings over the wire and are stored as text, and anything
// outside the three named variants is rejected strictly at the boundary,
// never coerced.
type Type string

const (
	// DustUp is a light dusting pass.
	DustUp Type = "dust_up"

	// SpotClean targets specific problem areas.
	SpotClean Type = "spot_clean"

	// FullClean is a complete top-to-bottom cleaning.
	FullClean Type = "full_clean"
)

// DefaultType is applied when a cleaning job is created without an explicit
// type.
const DefaultType = SpotClean

// getValidTypes returns the set of valid Type values.
func getValidTypes() map[Type]struct{} {
	return map[Type]struct{}{
		DustUp:    {},
		SpotClean: {},
		FullClean: {},
	}
}

// ParseType converts a raw string into a Type.
//
// Returns a validation error for any value outside the closed set. The zero
// string is not a valid type; callers wanting the default apply DefaultType
// explicitly.
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the Type is one of the three named variants.
func (t Type) Validate() error {
	if _, ok := getValidTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cleaning_type",
			fmt.Errorf("%q is not a valid cleaning type", string(t)),
		)
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
