package cleaning

import (
	"errors"

	"cleanings/internal/pkg/errs"
)

var (
	// ErrCleaningIsNotConstructed is returned when a Cleaning instance was
	// not created through NewCleaning or RestoreCleaning.
	ErrCleaningIsNotConstructed = errors.New("Cleaning must be created via NewCleaning or RestoreCleaning constructor")

	// ErrCleaningTypeIsNull is returned when a patch explicitly sets the
	// cleaning type to null. The type always has a value on a stored record,
	// so a merge that would null it out is rejected before any write.
	ErrCleaningTypeIsNull = errors.New("cleaning type cannot be null")
)

// Cleaning is the cleaning-job aggregate, the sole domain object in this
// system.
//
// Invariants:
//   - name is never empty
//   - cleaningType is always one of the valid Type variants
//   - id is assigned exactly once, by the database, at creation
//   - can only be created through NewCleaning or RestoreCleaning
//
// Private fields keep the invariants enforced through the constructors and
// ApplyPatch; description is the only nullable attribute.
type Cleaning struct {
	id            int64
	name          string
	description   *string
	price         float64
	cleaningType  Type
	isConstructed bool
}

// NewCleaning creates a cleaning job that has not been persisted yet. The id
// stays zero until the repository inserts the row and the database assigns
// one.
//
// An empty cleaningType resolves to DefaultType; any other invalid type is an
// error. The price carries no constraint beyond presence, which the boundary
// enforces (a rate of 0.00 is valid).
func NewCleaning(name string, description *string, price float64, cleaningType Type) (*Cleaning, error) {
	if cleaningType == "" {
		cleaningType = DefaultType
	}

	c := &Cleaning{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setDescription(description),
		c.setPrice(price),
		c.setCleaningType(cleaningType),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCleaning reconstructs a cleaning job from persistence, including its
// database-assigned id. Used by repositories when mapping rows back into the
// domain.
func RestoreCleaning(id int64, name string, description *string, price float64, cleaningType Type) (*Cleaning, error) {
	c, err := NewCleaning(name, description, price, cleaningType)
	if err != nil {
		return nil, err
	}

	if id < 1 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	c.id = id

	return c, nil
}

// Validate ensures the Cleaning was properly constructed.
func (c *Cleaning) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCleaningIsNotConstructed
	}
	return nil
}

// IsEqual compares two cleaning jobs by id.
func (c *Cleaning) IsEqual(other *Cleaning) bool {
	return other != nil && c.id == other.id
}

// ID returns the database-assigned identifier, zero if not yet persisted.
func (c *Cleaning) ID() int64 {
	return c.id
}

// Name returns the cleaning job's name.
func (c *Cleaning) Name() string {
	return c.name
}

// Description returns the optional description, nil when absent.
func (c *Cleaning) Description() *string {
	return c.description
}

// Price returns the hourly rate.
func (c *Cleaning) Price() float64 {
	return c.price
}

// CleaningType returns the job's type.
func (c *Cleaning) CleaningType() Type {
	return c.cleaningType
}

// ApplyPatch merges a partial update onto the current state. Every attribute
// present in the patch overwrites the current value; attributes absent from
// the patch keep their current values. An explicit null clears the
// description, but nulling any required attribute is rejected:
// cleaning_type with the distinct ErrCleaningTypeIsNull, name and price with
// a value-required error.
//
// The merge is computed and validated entirely in memory; no write happens
// here.
func (c *Cleaning) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if patch.CleaningType.IsSpecified() {
		if patch.CleaningType.IsNull() {
			return ErrCleaningTypeIsNull
		}
		if err := c.setCleaningType(patch.CleaningType.MustGet()); err != nil {
			return err
		}
	}

	if patch.Name.IsSpecified() {
		if patch.Name.IsNull() {
			return errs.NewValueIsRequiredError("name")
		}
		if err := c.setName(patch.Name.MustGet()); err != nil {
			return err
		}
	}

	if patch.Description.IsSpecified() {
		if patch.Description.IsNull() {
			c.description = nil
		} else {
			desc := patch.Description.MustGet()
			c.description = &desc
		}
	}

	if patch.Price.IsSpecified() {
		if patch.Price.IsNull() {
			return errs.NewValueIsRequiredError("price")
		}
		if err := c.setPrice(patch.Price.MustGet()); err != nil {
			return err
		}
	}

	return nil
}

func (c *Cleaning) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *Cleaning) setDescription(description *string) error {
	c.description = description
	return nil
}

func (c *Cleaning) setPrice(price float64) error {
	c.price = price
	return nil
}

func (c *Cleaning) setCleaningType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.cleaningType = t
	return nil
}
