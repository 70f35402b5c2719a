// Package compiler turns declarative field specifications into a layout.
//
// Four specification kinds are accepted:
//
//	BitWidth    explicit width over [Min, Max]: Scale = (Max-Min) / 2^Bits
//	Resolution  width derived from a step:      Bits = ceil(log2((Max-Min)/Resolution))
//	Manual      width, scale and add verbatim
//	Flag        one bit, no quantization
//
// Specifications are consumed in order. Field i gets identifier i and starts
// at the bit where field i-1 ended, so input order, identifier order and bit
// order always agree.
//
// # Usage
//
//	c := compiler.New(compiler.WithKeySource(random.NewSeeded(1)))
//	l, err := c.Compile("ble", "reliability capture", []compiler.Spec{
//		compiler.BitWidth{Name: "sine", Min: -5000, Max: 5000, Bits: 14},
//		compiler.Resolution{Name: "triangle", Min: -10, Max: 20, Resolution: 0.05},
//		compiler.Flag{Name: "armed"},
//	})
//
// More than layout.MaxFields specifications compile the first MaxFields and
// return the layout together with an errors.KindLayoutOverflow error.
package compiler
