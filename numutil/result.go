package numutil

import (
	"fmt"
	"strconv"
)

// Kind tags a Result.
type Kind int

const (
	// KindInvalid marks input that matched no accepted call form, or an
	// aggregate over an empty working set that has no defined fallback.
	KindInvalid Kind = iota
	// KindNone marks a successful computation with no value, e.g. a set
	// without a mode.
	KindNone
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNone:
		return "none"
	case KindValue:
		return "value"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Result is the outcome of a helper that can fail or come up empty.
// The zero Result is invalid.
type Result struct {
	kind  Kind
	value float64
}

func Value(v float64) Result { return Result{kind: KindValue, value: v} }

func None() Result { return Result{kind: KindNone} }

func Invalid() Result { return Result{kind: KindInvalid} }

func (r Result) Kind() Kind { return r.kind }

// Float returns the value and whether there is one.
func (r Result) Float() (float64, bool) {
	return r.value, r.kind == KindValue
}

// OK reports whether the input was accepted, with or without a value.
func (r Result) OK() bool { return r.kind != KindInvalid }

func (r Result) IsNone() bool { return r.kind == KindNone }

func (r Result) IsInvalid() bool { return r.kind == KindInvalid }

func (r Result) String() string {
	if r.kind == KindValue {
		return strconv.FormatFloat(r.value, 'g', -1, 64)
	}
	return fmt.Sprintf("<%s>", r.kind)
}
