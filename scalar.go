package scalar

import (
	"fmt"
	"reflect"
)

// Scalar is the set of types usable as entries of vectors and matrices.
//
// Every comparable type qualifies, including named numeric types declared
// outside this module. Debug formatting is provided by fmt for any type and
// the identity token is the type's reflect.Type, so comparability is the
// only bound.
//
// Code generic over Scalar must compare with [Equal] and duplicate with
// [Clone]. Built-in == and assignment compile for every Scalar, Uninit
// included, and on an Uninit they read the payload without faulting.
type Scalar interface {
	comparable
}

// Equaler lets an element type replace built-in == in Equal.
type Equaler[S any] interface {
	Equal(other S) bool
}

// Cloner lets an element type replace plain assignment in Clone.
type Cloner[S any] interface {
	Clone() S
}

// TypeOf returns the identity token of S.
func TypeOf[S Scalar]() reflect.Type {
	return reflect.TypeFor[S]()
}

// Is reports whether S and T are the same concrete type.
//
// Named types with the same underlying type are distinct, as are different
// instantiations of one generic type:
//
//	scalar.Is[float32, float32]()       // true
//	scalar.Is[float32, float64]()       // false
//	scalar.Is[Vec[float32], Vec[float64]]() // false
func Is[S, T Scalar]() bool {
	return reflect.TypeFor[S]() == reflect.TypeFor[T]()
}

// IsType reports whether t is the identity token of S.
func IsType[S Scalar](t reflect.Type) bool {
	return t == reflect.TypeFor[S]()
}

// Equal compares two elements. Generic container code compares through
// Equal rather than ==, so that Uninit carriers trap.
func Equal[S Scalar](a, b S) bool {
	if e, ok := any(a).(Equaler[S]); ok {
		return e.Equal(b)
	}
	return a == b
}

// Clone duplicates an element.
func Clone[S Scalar](v S) S {
	if c, ok := any(v).(Cloner[S]); ok {
		return c.Clone()
	}
	return v
}

// Format returns the debug form of an element.
func Format[S Scalar](v S) string {
	return fmt.Sprintf("%v", v)
}
