package scalar

import (
	"reflect"
	"strings"

	"go.uber.org/zap"
)

// FaultKind categorizes a misuse of an uninitialized carrier.
type FaultKind string

const (
	FaultPrematureRead        FaultKind = "premature_read"
	FaultPrematureDuplication FaultKind = "premature_duplication"
)

var faultDetails = map[FaultKind]string{
	FaultPrematureRead:        "equality attempted on possibly-uninitialized value",
	FaultPrematureDuplication: "duplication attempted on possibly-uninitialized value",
}

// Fault is the panic value raised when a carrier is compared or duplicated.
//
// Faults are programmer errors, not runtime conditions, so they are never
// returned. An unrecovered Fault terminates the process at the call site.
type Fault struct {
	Kind FaultKind
	Type reflect.Type
}

// Sentinels for errors.Is against a recovered Fault.
var (
	ErrPrematureRead        = &Fault{Kind: FaultPrematureRead}
	ErrPrematureDuplication = &Fault{Kind: FaultPrematureDuplication}
)

// Error implements the error interface
func (f *Fault) Error() string {
	var b strings.Builder
	b.WriteString("[fault] ")
	b.WriteString(string(f.Kind))
	if f.Type != nil {
		b.WriteString(" on ")
		b.WriteString(f.Type.String())
	}
	if d, ok := faultDetails[f.Kind]; ok {
		b.WriteString(": ")
		b.WriteString(d)
	}
	return b.String()
}

// Detail returns the human-readable description of the fault kind.
func (f *Fault) Detail() string {
	return faultDetails[f.Kind]
}

// Is matches faults of the same kind.
func (f *Fault) Is(target error) bool {
	if t, ok := target.(*Fault); ok {
		return f.Kind == t.Kind
	}
	return false
}

func raise(kind FaultKind, t reflect.Type) {
	f := &Fault{Kind: kind, Type: t}
	Logger().Error("carrier misuse",
		zap.String("kind", string(kind)),
		zap.Stringer("type", t),
		zap.String("detail", f.Detail()),
	)
	panic(f)
}
