// Package storage fills element buffers incrementally.
//
// A Staged buffer hands out a slice of scalar.Uninit carriers, records
// which slots have been written, and turns the carriers into a []S once
// every slot holds a value.
package storage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rawbytedev/scalar"
	"github.com/rawbytedev/scalar/internal/common"
)

var (
	ErrInvalidLength  = errors.New("invalid buffer length")
	ErrOutOfRange     = errors.New("slot index out of range")
	ErrAlreadyWritten = errors.New("slot already written")
	ErrIncomplete     = errors.New("buffer not fully written")
	ErrFinalized      = errors.New("buffer already finalized")
	ErrLayoutMismatch = errors.New("carrier layout differs from element layout")
)

type Options struct {
	CheckLayout    bool // verify carrier layout at construction
	CopyOnFinalize bool // copy slots into a fresh []S instead of aliasing
}

// Staged is a fixed-length buffer of elements written one slot at a time.
// It is not safe for concurrent use.
type Staged[S scalar.Scalar] struct {
	Opts      Options
	slots     []scalar.Uninit[S]
	written   bitset
	finalized bool
}

func New[S scalar.Scalar](n int, opts Options) (*Staged[S], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if opts.CheckLayout && !scalar.LayoutCompatible[S]() {
		return nil, fmt.Errorf("%w: %s", ErrLayoutMismatch, scalar.TypeOf[S]())
	}
	Logger().Debug("staged buffer allocated",
		zap.Stringer("type", scalar.TypeOf[S]()),
		zap.Int("len", n),
	)
	return &Staged[S]{
		Opts:    opts,
		slots:   make([]scalar.Uninit[S], n),
		written: newBitset(n),
	}, nil
}

func (s *Staged[S]) Len() int {
	return len(s.slots)
}

// Write stores v in slot i. Each slot is written exactly once.
func (s *Staged[S]) Write(i int, v S) error {
	if s.finalized {
		return ErrFinalized
	}
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s.slots))
	}
	if s.written.has(i) {
		return fmt.Errorf("%w: %d", ErrAlreadyWritten, i)
	}
	*common.Elem[S](s.slots, i) = v
	s.written.set(i)
	return nil
}

// Written reports whether slot i holds a value.
func (s *Staged[S]) Written(i int) bool {
	if s.finalized || i < 0 || i >= len(s.slots) {
		return false
	}
	return s.written.has(i)
}

func (s *Staged[S]) Remaining() int {
	if s.finalized {
		return 0
	}
	return len(s.slots) - s.written.count()
}

func (s *Staged[S]) Complete() bool {
	return !s.finalized && s.Remaining() == 0
}

// Slots returns the carrier slice. Carriers can be passed to code generic
// over scalar.Scalar; comparing or cloning them panics.
func (s *Staged[S]) Slots() []scalar.Uninit[S] {
	return s.slots
}

// Finalize returns the written elements. By default the result aliases the
// carrier storage; with CopyOnFinalize it is a fresh slice. The buffer
// cannot be used afterwards.
func (s *Staged[S]) Finalize() ([]S, error) {
	if s.finalized {
		return nil, ErrFinalized
	}
	if first := s.written.firstUnset(len(s.slots)); first >= 0 {
		return nil, fmt.Errorf("%w: %d of %d slots unwritten, first at %d",
			ErrIncomplete, s.Remaining(), len(s.slots), first)
	}

	var out []S
	mode := "alias"
	if s.Opts.CopyOnFinalize {
		mode = "copy"
		out = make([]S, len(s.slots))
		for i := range s.slots {
			out[i] = *common.Elem[S](s.slots, i)
		}
	} else {
		var ok bool
		out, ok = common.Cast[S](s.slots)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLayoutMismatch, scalar.TypeOf[S]())
		}
	}

	Logger().Debug("staged buffer finalized",
		zap.Stringer("type", scalar.TypeOf[S]()),
		zap.Int("len", len(out)),
		zap.String("mode", mode),
	)
	s.slots = nil
	s.written = bitset{}
	s.finalized = true
	return out, nil
}
