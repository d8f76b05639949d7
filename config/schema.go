package config

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
	"github.com/teamlint/pg-column/validator"
)

// ErrTableNotFound no table of that name is configured.
var ErrTableNotFound = errors.New("table not found")

// Descriptor builds the column descriptor.
func (c ColumnCfg) Descriptor() (*column.Descriptor, error) {
	var (
		d   *column.Descriptor
		err error
	)
	if c.Type == string(kind.Enum) {
		d, err = column.NewEnum(c.Enum, c.Members...)
	} else {
		d, err = column.Parse(c.Type)
	}
	if err != nil {
		return nil, err
	}
	m := column.Modifiers{NotNull: c.NotNull, RenameFrom: c.RenameFrom}
	switch {
	case c.DefaultExpr != "":
		m.Default, m.HasDefault = literal.Expr(c.DefaultExpr), true
	case c.DefaultNull:
		m.HasDefault = true
	case c.Default != nil:
		m.Default, m.HasDefault = c.Default, true
	}
	switch c.Identity {
	case IdentityAlways:
		m.Identity = column.IdentityAlways
	case IdentityByDefault:
		m.Identity = column.IdentityByDefault
	}
	if err := d.Apply(m); err != nil {
		return nil, err
	}
	return d, nil
}

// Set builds the descriptors of every column.
func (t TableCfg) Set() (column.Set, error) {
	set := make(column.Set, len(t.Columns))
	for name, c := range t.Columns {
		d, err := c.Descriptor()
		if err != nil {
			return nil, errors.Wrapf(err, "column %s", name)
		}
		set[name] = d
	}
	return set, nil
}

// TableNames returns the configured table names in sorted order.
func (c *Config) TableNames() []string {
	names := make([]string, 0, len(c.Tables))
	for name := range c.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set builds the descriptors of table name.
func (c *Config) Set(name string) (column.Set, error) {
	t, ok := c.Tables[name]
	if !ok {
		return nil, errors.Wrapf(ErrTableNotFound, "%s", name)
	}
	set, err := t.Set()
	if err != nil {
		return nil, errors.Wrapf(err, "table %s", name)
	}
	return set, nil
}

// Validator builds the record validator of table name.
func (c *Config) Validator(name string) (*validator.Table, error) {
	set, err := c.Set(name)
	if err != nil {
		return nil, err
	}
	return validator.NewTable(name, set, c.Tables[name].PrimaryKey...)
}
