package frame

import (
	"fmt"
	"math"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindFunc
)

// Value represents a dynamically-typed value bound in a frame.
type Value struct {
	Kind  ValueKind
	I64   int64
	F64   float64
	Bool  bool
	Str   string
	Fn    Callable
	Valid bool
}

// String renders the value as a string.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.I64)
	case KindFloat:
		return fmt.Sprintf("%g", v.F64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	case KindFunc:
		if v.Fn == nil {
			return "<func>"
		}
		return fmt.Sprintf("<func %s>", v.Fn.Name())
	default:
		return "<nil>"
	}
}

// AsFloat64 converts the value to float64 if possible.
func (v Value) AsFloat64() (float64, error) {
	switch v.Kind {
	case KindFloat:
		return v.F64, nil
	case KindInt:
		return float64(v.I64), nil
	case KindBool:
		if v.Bool {
			return 1.0, nil
		}
		return 0.0, nil
	default:
		return 0, fmt.Errorf("cannot convert %v to float", v.Kind)
	}
}

// AsInt64 converts the value to int64 if possible.
func (v Value) AsInt64() (int64, error) {
	switch v.Kind {
	case KindInt:
		return v.I64, nil
	case KindFloat:
		return int64(v.F64), nil
	case KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert %v to int", v.Kind)
	}
}

// AsBool converts the value to bool if possible.
func (v Value) AsBool() (bool, error) {
	switch v.Kind {
	case KindBool:
		return v.Bool, nil
	case KindInt:
		return v.I64 != 0, nil
	case KindFloat:
		return math.Abs(v.F64) > 0, nil
	default:
		return false, fmt.Errorf("cannot convert %v to bool", v.Kind)
	}
}

// AsCallable returns the bound callable, if the value holds one.
func (v Value) AsCallable() (Callable, bool) {
	if v.Kind == KindFunc && v.Fn != nil {
		return v.Fn, true
	}
	return nil, false
}

// NewInt creates a new integer Value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, I64: i, Valid: true}
}

// NewFloat creates a new float Value.
func NewFloat(f float64) Value {
	return Value{Kind: KindFloat, F64: f, Valid: true}
}

// NewBool creates a new boolean Value.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b, Valid: true}
}

// NewString creates a new string Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s, Valid: true}
}

// NewFunc creates a new callable Value.
func NewFunc(fn Callable) Value {
	return Value{Kind: KindFunc, Fn: fn, Valid: true}
}
