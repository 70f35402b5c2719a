package field

import (
	"github.com/wippyai/bitspec/bits"
	"github.com/wippyai/bitspec/errors"
)

// Variant is a bit-positioned field of one fixed Kind.
type Variant interface {
	Kind() Kind
	Decode(buf []byte) Value
	// Encode writes v into buf. A v of another kind is rejected with
	// errors.KindTypeMismatch and buf is left unmodified.
	Encode(v Value, buf []byte) error
	BitLength() uint8
	BitOffset() uint8
	SetBitOffset(offset uint8)
}

// Bool is a single-bit flag.
type Bool struct {
	Offset uint8
}

func NewBool(offset uint8) *Bool {
	return &Bool{Offset: offset}
}

func (f *Bool) Kind() Kind { return KindBool }

func (f *Bool) Decode(buf []byte) Value {
	return BoolValue(bits.Bit(buf, f.Offset))
}

func (f *Bool) Encode(v Value, buf []byte) error {
	if v.kind != KindBool {
		return mismatch(v.kind, KindBool)
	}
	bits.SetBit(buf, f.Offset, v.b)
	return nil
}

func (f *Bool) BitLength() uint8 { return 1 }

func (f *Bool) BitOffset() uint8 { return f.Offset }

func (f *Bool) SetBitOffset(offset uint8) { f.Offset = offset }

// Real32 is a quantized float32 field.
type Real32 struct {
	Quantizer[float32]
}

func NewReal32(p bits.Position, scale, add float32) *Real32 {
	return &Real32{Quantizer[float32]{Position: p, Scale: scale, Add: add}}
}

func (f *Real32) Kind() Kind { return KindF32 }

func (f *Real32) Decode(buf []byte) Value {
	return F32Value(f.Quantizer.Decode(buf))
}

func (f *Real32) Encode(v Value, buf []byte) error {
	if v.kind != KindF32 {
		return mismatch(v.kind, KindF32)
	}
	f.Quantizer.Encode(v.F32(), buf)
	return nil
}

func (f *Real32) BitLength() uint8 { return f.Length }

func (f *Real32) BitOffset() uint8 { return f.Offset }

func (f *Real32) SetBitOffset(offset uint8) { f.Offset = offset }

// Real64 is a quantized float64 field.
type Real64 struct {
	Quantizer[float64]
}

func NewReal64(p bits.Position, scale, add float64) *Real64 {
	return &Real64{Quantizer[float64]{Position: p, Scale: scale, Add: add}}
}

func (f *Real64) Kind() Kind { return KindF64 }

func (f *Real64) Decode(buf []byte) Value {
	return F64Value(f.Quantizer.Decode(buf))
}

func (f *Real64) Encode(v Value, buf []byte) error {
	if v.kind != KindF64 {
		return mismatch(v.kind, KindF64)
	}
	f.Quantizer.Encode(v.f, buf)
	return nil
}

func (f *Real64) BitLength() uint8 { return f.Length }

func (f *Real64) BitOffset() uint8 { return f.Offset }

func (f *Real64) SetBitOffset(offset uint8) { f.Offset = offset }

// Position returns the bit range v occupies.
func Position(v Variant) bits.Position {
	return bits.Position{Offset: v.BitOffset(), Length: v.BitLength()}
}

// Params returns the quantization parameters of v widened to float64.
// ok is false for Bool.
func Params(v Variant) (scale, add float64, ok bool) {
	switch f := v.(type) {
	case *Real32:
		return float64(f.Scale), float64(f.Add), true
	case *Real64:
		return f.Scale, f.Add, true
	default:
		return 0, 0, false
	}
}

func mismatch(got, want Kind) error {
	return errors.TypeMismatch(errors.PhaseEncode, nil, got.String(), want.String())
}
