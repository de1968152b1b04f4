// Package scalar defines the element types of the numeric containers.
//
// Any comparable type is a [Scalar]. Its identity token is its
// reflect.Type, compared with [Is] or [IsType] without a live value.
//
// [Uninit] is a slot of storage laid out exactly like its element type. A
// storage owner allocates a []Uninit[S], writes S values into it, and once
// every slot is written reinterprets the slice as []S. Until then generic
// code may build and pass the slice around as a slice of Scalar values.
//
// Comparing or duplicating a carrier through [Equal], [Clone], or the
// carrier's own methods panics with a *[Fault]. These are bugs in the
// calling algorithm, so they are raised as panics instead of returned as
// errors, and nothing substitutes a default value.
package scalar
