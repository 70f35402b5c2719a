package field

import (
	"math"

	"github.com/wippyai/bitspec/bits"
)

// Quantizer stores a real value as a linearly scaled unsigned integer.
// Scale must be non-zero.
type Quantizer[T float32 | float64] struct {
	Scale T
	Add   T
	bits.Position
}

// Decode reads the raw integer and applies raw*Scale + Add.
func (q *Quantizer[T]) Decode(buf []byte) T {
	raw := bits.Get(buf, q.Position)
	return T(raw)*q.Scale + q.Add
}

// Encode writes Raw(v).
func (q *Quantizer[T]) Encode(v T, buf []byte) {
	bits.Put(buf, q.Position, q.Raw(v))
}

// Raw returns the integer stored for v: round((v - Add) / Scale) clamped to
// the position's range. NaN maps to 0.
func (q *Quantizer[T]) Raw(v T) uint32 {
	r := math.Round(float64((v - q.Add) / q.Scale))
	switch {
	case r != r, r <= 0:
		return 0
	case r >= float64(q.Max()):
		return q.Max()
	default:
		return uint32(r)
	}
}

// Value returns the real value raw decodes to.
func (q *Quantizer[T]) Value(raw uint32) T {
	return T(raw&q.Max())*q.Scale + q.Add
}

// Step returns the quantization step, |Scale|.
func (q *Quantizer[T]) Step() T {
	if q.Scale < 0 {
		return -q.Scale
	}
	return q.Scale
}

// Range returns the smallest and largest representable values.
func (q *Quantizer[T]) Range() (lo, hi T) {
	lo, hi = q.Value(0), q.Value(q.Max())
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
