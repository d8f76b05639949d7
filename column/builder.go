package column

import (
	"github.com/sirupsen/logrus"
)

type base struct {
	d   *Descriptor
	err error
}

func (b *base) fail(modifier string, err error) {
	if err == nil {
		return
	}
	dataType := ""
	if b.d != nil {
		dataType = b.d.DataType
	}
	logrus.WithField("data_type", dataType).
		WithField("modifier", modifier).
		WithError(err).
		Debugln("column modifier rejected")
	if b.err == nil {
		b.err = err
	}
}

func (b *base) ok() bool {
	return b.err == nil && b.d != nil
}

// Build returns the descriptor, or the first build-time error met while
// constructing it.
func (b *base) Build() (*Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.d, nil
}

// MustBuild is like Build but panics on error.
func (b *base) MustBuild() *Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// Builder column builder for kinds that take a default.
type Builder struct {
	base
}

// NotNull marks the column NOT NULL.
func (b *Builder) NotNull() *Builder {
	if b.ok() {
		b.d.SetNotNull()
	}
	return b
}

// Default sets the column default. raw may be a native value or a
// literal.Expr.
func (b *Builder) Default(raw interface{}) *Builder {
	if b.ok() {
		b.fail("default", b.d.SetDefault(raw))
	}
	return b
}

// RenameFrom records the previous column name.
func (b *Builder) RenameFrom(old string) *Builder {
	if b.ok() {
		b.d.SetRenameFrom(old)
	}
	return b
}

// IdentityBuilder column builder for integer kinds.
type IdentityBuilder struct {
	base
}

// NotNull marks the column NOT NULL.
func (b *IdentityBuilder) NotNull() *IdentityBuilder {
	if b.ok() {
		b.d.SetNotNull()
	}
	return b
}

// Default sets the column default.
func (b *IdentityBuilder) Default(raw interface{}) *IdentityBuilder {
	if b.ok() {
		b.fail("default", b.d.SetDefault(raw))
	}
	return b
}

// RenameFrom records the previous column name.
func (b *IdentityBuilder) RenameFrom(old string) *IdentityBuilder {
	if b.ok() {
		b.d.SetRenameFrom(old)
	}
	return b
}

// GeneratedAlwaysAsIdentity the value is always generated; it replaces
// a previous by-default mode.
func (b *IdentityBuilder) GeneratedAlwaysAsIdentity() *IdentityBuilder {
	if b.ok() {
		b.fail("identity", b.d.SetIdentity(IdentityAlways))
	}
	return b
}

// GeneratedByDefaultAsIdentity the value is generated unless one is
// given; it replaces a previous always mode.
func (b *IdentityBuilder) GeneratedByDefaultAsIdentity() *IdentityBuilder {
	if b.ok() {
		b.fail("identity", b.d.SetIdentity(IdentityByDefault))
	}
	return b
}

// SerialBuilder column builder for sequence kinds, which never take a
// default.
type SerialBuilder struct {
	base
}

// NotNull marks the column NOT NULL.
func (b *SerialBuilder) NotNull() *SerialBuilder {
	if b.ok() {
		b.d.SetNotNull()
	}
	return b
}

// RenameFrom records the previous column name.
func (b *SerialBuilder) RenameFrom(old string) *SerialBuilder {
	if b.ok() {
		b.d.SetRenameFrom(old)
	}
	return b
}
