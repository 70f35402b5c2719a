package field

import (
	"strconv"
)

// Value is a typed field value. The zero Value is a false bool.
type Value struct {
	f    float64
	kind Kind
	b    bool
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func F32Value(v float32) Value {
	return Value{kind: KindF32, f: float64(v)}
}

func F64Value(v float64) Value {
	return Value{kind: KindF64, f: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload; false for real kinds.
func (v Value) Bool() bool {
	return v.b
}

// F32 returns the payload as float32; 0 for bool.
func (v Value) F32() float32 {
	return float32(v.f)
}

// F64 returns the payload as float64; 0 for bool.
func (v Value) F64() float64 {
	return v.f
}

// Float returns the payload as float64, mapping bool to 0 or 1.
func (v Value) Float() float64 {
	if v.kind == KindBool {
		if v.b {
			return 1
		}
		return 0
	}
	return v.f
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindF32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	default:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
}
