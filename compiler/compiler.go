package compiler

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/bitspec/bits"
	"github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
	"github.com/wippyai/bitspec/random"
)

// f32Exact is the widest raw value a float32 holds exactly. Wider Real32
// fields still compile, but raw values above 2^24 round on decode.
const f32Exact = 24

// KeySource supplies record keys.
type KeySource interface {
	Uint64() uint64
}

type Compiler struct {
	keys      KeySource
	precision field.Kind
}

type Option func(*Compiler)

// WithKeySource sets the entropy source for record keys.
func WithKeySource(k KeySource) Option {
	return func(c *Compiler) {
		c.keys = k
	}
}

// WithPrecision selects field.KindF32 (default) or field.KindF64 for quantized fields.
func WithPrecision(k field.Kind) Option {
	return func(c *Compiler) {
		if k.IsReal() {
			c.precision = k
		}
	}
}

func New(opts ...Option) *Compiler {
	c := &Compiler{
		keys:      random.NewSecure(),
		precision: field.KindF32,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile builds a layout from specs in order.
//
// When specs holds more than layout.MaxFields entries the surplus is dropped
// and the returned layout comes with a non-nil LayoutOverflow error.
// Any other error returns a nil layout.
func (c *Compiler) Compile(name, description string, specs []Spec) (*layout.Layout, error) {
	if len(specs) == 0 {
		return nil, errors.EmptyLayout(errors.PhaseCompile, name)
	}

	var overflow error
	if len(specs) > layout.MaxFields {
		overflow = errors.LayoutOverflow(name, len(specs), layout.MaxFields)
		Logger().Warn("layout overflow",
			zap.String("layout", name),
			zap.Int("fields", len(specs)),
			zap.Int("dropped", len(specs)-layout.MaxFields))
		specs = specs[:layout.MaxFields]
	}

	fields := make([]layout.NamedField, 0, len(specs))
	cursor := 0
	for i, s := range specs {
		path := []string{name, s.SpecName()}
		if cursor > bits.MaxOffset {
			return nil, errors.New(errors.PhaseCompile, errors.KindOutOfBounds).
				Path(path...).
				Value(cursor).
				Detail("field starts at bit %d, past %d", cursor, bits.MaxOffset).
				Build()
		}

		v, err := c.variant(s, path)
		if err != nil {
			return nil, err
		}
		v.SetBitOffset(uint8(cursor))

		if v.Kind() == field.KindF32 && v.BitLength() > f32Exact {
			Logger().Warn("f32 field wider than float32 mantissa",
				zap.String("layout", name),
				zap.String("field", s.SpecName()),
				zap.Uint8("length", v.BitLength()),
				zap.Int("exact_bits", f32Exact))
		}

		Logger().Debug("compiled field",
			zap.String("layout", name),
			zap.String("field", s.SpecName()),
			zap.Int("id", i),
			zap.Uint8("offset", v.BitOffset()),
			zap.Uint8("length", v.BitLength()))

		fields = append(fields, layout.NamedField{
			ID:    uint8(i),
			Name:  s.SpecName(),
			Field: v,
		})
		cursor += int(v.BitLength())
	}

	l, err := layout.New(name, description, c.keys.Uint64(), fields)
	if err != nil {
		return nil, err
	}
	return l, overflow
}

// Compile compiles specs with a default Compiler.
func Compile(name, description string, specs []Spec) (*layout.Layout, error) {
	return New().Compile(name, description, specs)
}

func (c *Compiler) variant(s Spec, path []string) (field.Variant, error) {
	if _, ok := s.(Flag); ok {
		return field.NewBool(0), nil
	}

	width, scale, add, err := Params(s, path)
	if err != nil {
		return nil, err
	}
	p := bits.Position{Length: width}
	if c.precision == field.KindF64 {
		return field.NewReal64(p, scale, add), nil
	}
	return field.NewReal32(p, float32(scale), float32(add)), nil
}

// Params resolves the width, scale and add a quantized spec compiles to.
// Flag yields width 1 with zero scale and add.
func Params(s Spec, path []string) (width uint8, scale, add float64, err error) {
	switch s := s.(type) {
	case BitWidth:
		if err := checkWidth(int(s.Bits), path); err != nil {
			return 0, 0, 0, err
		}
		if !finite(s.Min, s.Max) || s.Max <= s.Min {
			return 0, 0, 0, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Path(path...).
				Detail("range [%v, %v] is empty", s.Min, s.Max).
				Build()
		}
		return s.Bits, (s.Max - s.Min) / math.Ldexp(1, int(s.Bits)), s.Min, nil

	case Resolution:
		width, err := ResolutionWidth(s.Max-s.Min, s.Resolution, path)
		if err != nil {
			return 0, 0, 0, err
		}
		return width, s.Resolution, s.Min, nil

	case Manual:
		if err := checkWidth(int(s.Bits), path); err != nil {
			return 0, 0, 0, err
		}
		if !finite(s.Scale, s.Add) || s.Scale == 0 {
			return 0, 0, 0, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Path(path...).
				Value(s.Scale).
				Detail("scale must be finite and non-zero").
				Build()
		}
		return s.Bits, s.Scale, s.Add, nil

	case Flag:
		return 1, 0, 0, nil

	default:
		return 0, 0, 0, errors.Unsupported(errors.PhaseCompile, "unknown spec type")
	}
}

// ResolutionWidth returns ceil(log2(rangeWidth/resolution)), at least 1, so
// that the step never exceeds resolution.
func ResolutionWidth(rangeWidth, resolution float64, path []string) (uint8, error) {
	if !finite(rangeWidth, resolution) || rangeWidth <= 0 || resolution <= 0 {
		return 0, errors.InvalidResolution(path, rangeWidth, resolution)
	}
	steps := rangeWidth / resolution
	if math.IsInf(steps, 0) {
		return 0, errors.InvalidResolution(path, rangeWidth, resolution)
	}
	n := math.Ceil(math.Log2(steps))
	if n < 1 {
		n = 1
	}
	if n > bits.MaxLength {
		return 0, errors.InvalidWidth(errors.PhaseCompile, path, int(n), bits.MaxLength)
	}
	return uint8(n), nil
}

func checkWidth(w int, path []string) error {
	if w < 1 || w > bits.MaxLength {
		return errors.InvalidWidth(errors.PhaseCompile, path, w, bits.MaxLength)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
