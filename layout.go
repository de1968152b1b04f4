package scalar

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/scalar/internal/common"
)

// Info is the layout of an element type.
type Info struct {
	Type  reflect.Type
	Kind  reflect.Kind
	Size  uintptr
	Align uintptr
	Fixed bool // fixed-width numeric kind
	Width int  // byte width of a fixed kind, -1 otherwise
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s %d/%d", i.Type, i.Kind, i.Size, i.Align)
}

type registry struct {
	mu    sync.RWMutex
	infos map[reflect.Type]Info
}

var layouts = &registry{infos: make(map[reflect.Type]Info)}

func (r *registry) get(t reflect.Type) Info {
	r.mu.RLock()
	if info, ok := r.infos[t]; ok {
		r.mu.RUnlock()
		return info
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check
	if info, ok := r.infos[t]; ok {
		return info
	}
	info := Info{
		Type:  t,
		Kind:  t.Kind(),
		Size:  t.Size(),
		Align: uintptr(t.Align()),
		Fixed: common.IsFixedKind(t.Kind()),
		Width: common.FixedSize(t.Kind()),
	}
	r.infos[t] = info
	return info
}

// Describe returns the layout of S. Results are cached per type.
func Describe[S Scalar]() Info {
	return layouts.get(TypeOf[S]())
}

// LayoutCompatible reports whether a []Uninit[S] may be reinterpreted as a
// []S: both element types must have the same size and alignment.
func LayoutCompatible[S Scalar]() bool {
	s, u := Describe[S](), Describe[Uninit[S]]()
	return s.Size == u.Size && s.Align == u.Align
}
