package column

import (
	"github.com/pkg/errors"
)

// Modifiers declarative modifier set, applied in a fixed order: identity,
// default, not-null, rename.
type Modifiers struct {
	NotNull    bool
	Default    interface{}
	HasDefault bool // Default is set, nil included
	Identity   Identity
	RenameFrom string
}

// Apply applies m to d with the same capability checks as the builders.
func (d *Descriptor) Apply(m Modifiers) error {
	if m.Identity != IdentityNone {
		if err := d.SetIdentity(m.Identity); err != nil {
			return err
		}
	}
	if m.HasDefault {
		if err := d.SetDefault(m.Default); err != nil {
			return err
		}
	}
	if m.NotNull {
		d.SetNotNull()
	}
	if m.RenameFrom != "" {
		d.SetRenameFrom(m.RenameFrom)
	}
	return nil
}

// Build parses typ and applies m, e.g. Build("varchar(20)", Modifiers{NotNull: true}).
func Build(typ string, m Modifiers) (*Descriptor, error) {
	d, err := Parse(typ)
	if err != nil {
		return nil, err
	}
	if err := d.Apply(m); err != nil {
		return nil, errors.Wrapf(err, "column %s", typ)
	}
	return d, nil
}
