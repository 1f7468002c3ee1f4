package cleaning

import "github.com/oapi-codegen/nullable"

// Patch carries a partial update with exclude-unset semantics. Each field is
// tri-state: unspecified (omitted from the payload, leave the stored value
// untouched), explicitly null, or set to a value. The distinction between
// omitted and null matters — nulling the description clears it, while
// nulling a required attribute is an invalid merge.
type Patch struct {
	Name         nullable.Nullable[string]
	Description  nullable.Nullable[string]
	Price        nullable.Nullable[float64]
	CleaningType nullable.Nullable[Type]
}

// IsEmpty reports whether the patch touches no attribute at all. Applying an
// empty patch is a no-op that still returns the current record.
func (p Patch) IsEmpty() bool {
	return !p.Name.IsSpecified() &&
		!p.Description.IsSpecified() &&
		!p.Price.IsSpecified() &&
		!p.CleaningType.IsSpecified()
}
