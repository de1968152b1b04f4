package scalar

import (
	"fmt"
	"io"
)

const uninitText = "UninitScalar"

// Uninit is a slot reserved for an S that may not have been written yet.
//
// It has the size and alignment of S, so a fully written []Uninit[S] can be
// reinterpreted as []S by its owner. Uninit never looks at its payload:
// formatting prints a fixed placeholder, and Equal and Clone panic with a
// *Fault. Which slots hold a valid S is tracked by the owner, not here.
// The owner must not treat a slot as written before it has been, and must
// not run element cleanup against a slot that was never written.
//
// Only [Equal], [Clone] and the methods below trap. Uninit is comparable so
// that it satisfies [Scalar], which means built-in == on two carriers,
// directly or inside generic code, compiles and compares the raw payload
// with no fault.
type Uninit[S Scalar] struct {
	raw S
}

// Equal always panics with a FaultPrematureRead fault.
func (Uninit[S]) Equal(Uninit[S]) bool {
	raise(FaultPrematureRead, TypeOf[Uninit[S]]())
	return false
}

// Clone always panics with a FaultPrematureDuplication fault.
func (Uninit[S]) Clone() Uninit[S] {
	raise(FaultPrematureDuplication, TypeOf[Uninit[S]]())
	return Uninit[S]{}
}

func (Uninit[S]) String() string   { return uninitText }
func (Uninit[S]) GoString() string { return uninitText }

// Format prints the placeholder for every verb and flag.
func (Uninit[S]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, uninitText)
}
