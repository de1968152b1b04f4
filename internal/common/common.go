package common

import (
	"reflect"
	"unsafe"
)

// IsFixedKind reports whether k is a fixed-width numeric kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-width kinds, or -1.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64, reflect.Complex64:
		return 8
	case reflect.Complex128:
		return 16
	default:
		return -1
	}
}

// Aligned reports whether p sits on an align-byte boundary.
func Aligned(p unsafe.Pointer, align uintptr) bool {
	if align <= 1 {
		return true
	}
	return uintptr(p)%align == 0
}

// Cast aliases s as a []To without copying. It reports false, and returns
// nil, when the element types differ in size or alignment.
func Cast[To, From any](s []From) ([]To, bool) {
	var from From
	var to To
	if unsafe.Sizeof(from) != unsafe.Sizeof(to) || unsafe.Alignof(from) != unsafe.Alignof(to) {
		return nil, false
	}
	if len(s) == 0 {
		return []To{}, true
	}
	p := unsafe.Pointer(unsafe.SliceData(s))
	if !Aligned(p, unsafe.Alignof(to)) {
		return nil, false
	}
	return unsafe.Slice((*To)(p), len(s)), true
}

// Elem returns a pointer to s[i] viewed as a *To. The caller guarantees
// that From and To share a layout and that i is in range.
func Elem[To, From any](s []From, i int) *To {
	return (*To)(unsafe.Pointer(&s[i]))
}
