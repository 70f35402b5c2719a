package compiler

// Spec is one declarative field description. The set of implementations is closed.
type Spec interface {
	SpecName() string
	isSpec()
}

// BitWidth spreads [Min, Max] over an explicit number of bits.
type BitWidth struct {
	Name string
	Min  float64
	Max  float64
	Bits uint8
}

// Resolution derives the width needed to step through [Min, Max] in
// increments no larger than Resolution.
type Resolution struct {
	Name       string
	Min        float64
	Max        float64
	Resolution float64
}

// Manual takes width, scale and add verbatim.
type Manual struct {
	Name  string
	Scale float64
	Add   float64
	Bits  uint8
}

// Flag is a single-bit boolean.
type Flag struct {
	Name string
}

func (s BitWidth) SpecName() string   { return s.Name }
func (s Resolution) SpecName() string { return s.Name }
func (s Manual) SpecName() string     { return s.Name }
func (s Flag) SpecName() string       { return s.Name }

func (BitWidth) isSpec()   {}
func (Resolution) isSpec() {}
func (Manual) isSpec()     {}
func (Flag) isSpec()       {}
