// Package field converts between packed integers and typed values.
//
// A Quantizer maps the raw integer stored at a bits.Position to a real value
// with a linear transform:
//
//	value = raw*Scale + Add
//	raw   = round((value - Add) / Scale), clamped to [0, 2^Length-1]
//
// # Variants
//
// Three closed variants implement the Variant interface:
//
//	Bool    single bit, no quantization
//	Real32  Quantizer[float32]
//	Real64  Quantizer[float64]
//
// Values cross the Variant boundary as a Value, a tagged union over the same
// three kinds. Encoding a Value whose kind differs from the field's kind is
// reported as an errors.KindTypeMismatch and leaves the line untouched.
package field
