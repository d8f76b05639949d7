// Package coerce holds the per-kind coercion rules: each accepts a set of
// raw Go input shapes and turns them into one storage representation, or
// rejects them with a *Error.
package coerce

import (
	"math/big"
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
)

// Shape raw or coerced value shape.
type Shape string

const (
	ShapeNumber  Shape = "number" // Go integer and float types, json.Number
	ShapeBigInt  Shape = "bigint" // *big.Int
	ShapeString  Shape = "string"
	ShapeBool    Shape = "boolean"
	ShapeTime    Shape = "time.Time"
	ShapeBytes   Shape = "[]byte"
	ShapeJSON    Shape = "json" // any JSON-serializable value
	ShapeInt64   Shape = "int64"
	ShapeRawJSON Shape = "json.RawMessage"
)

// Rule coercion rule of one kind. Rules never see nil or absent input;
// nullability is decided by the caller.
type Rule interface {
	InputShapes() []Shape
	OutputShape() Shape
	Coerce(raw interface{}) (interface{}, error)
}

// Factory creates the rule of a descriptor.
type Factory func(d *column.Descriptor) Rule

// ErrRuleNotFound no rule is registered for a kind.
var ErrRuleNotFound = errors.New("coercion rule not found")

var (
	mu        sync.RWMutex
	factories = make(map[kind.Kind]Factory)
)

// RegisterRule registers the rule factory of k. The first registration wins.
func RegisterRule(k kind.Kind, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := factories[k]; !ok {
		factories[k] = f
	}
}

// For returns the rule of d.
func For(d *column.Descriptor) (Rule, error) {
	mu.RLock()
	f, ok := factories[d.Kind]
	mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrRuleNotFound, "%s", d.Kind)
	}
	return f(d), nil
}

// Indirect dereferences pointers. ok is false for nil pointers, which
// stand for null.
func Indirect(raw interface{}) (v interface{}, ok bool) {
	if raw == nil {
		return nil, false
	}
	// *big.Int is a value shape of its own.
	if n, isBig := raw.(*big.Int); isBig {
		return n, n != nil
	}
	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
		if n, isBig := rv.Interface().(*big.Int); isBig {
			return n, n != nil
		}
	}
	return rv.Interface(), true
}

// shapes is a fixed input shape list.
type shapes struct {
	in  []Shape
	out Shape
}

func (s shapes) InputShapes() []Shape {
	return append([]Shape(nil), s.in...)
}

func (s shapes) OutputShape() Shape {
	return s.out
}
