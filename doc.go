// Package bitspec packs fixed-schema records into compact bit-level lines.
//
// A record schema is written as a list of field specifications. The compiler
// turns it into a layout: each field gets an identifier, a bit offset and a
// bit length, and quantized fields get the scale and offset that map their
// raw integer to a real value. Encoding and decoding then read and write the
// field's bits in a byte slice without touching its neighbours.
//
// # Architecture Overview
//
//	bitspec/
//	├── bits/        Unsigned values at arbitrary bit positions (LSB first)
//	├── field/       Bool, Real32 and Real64 field variants and their values
//	├── layout/      Compiled layouts, per-field and whole-line codec, export
//	├── compiler/    Field specifications to layout
//	├── spec/        YAML spec documents and the template
//	├── codegen/     Rust, C, C runtime and WIT renderings of a layout
//	├── wasmio/      Packed records in WebAssembly linear memory
//	├── random/      Record key sources
//	├── errors/      Structured error types
//	└── cmd/bitspec/ Command line and interactive front end
//
// # Quick Start
//
//	l, err := compiler.Compile("ble test", "sensor frame", []compiler.Spec{
//	    compiler.BitWidth{Name: "sine", Min: -5000, Max: 5000, Bits: 14},
//	    compiler.Resolution{Name: "triangle", Min: -10, Max: 20, Resolution: 0.05},
//	    compiler.Flag{Name: "armed"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line := l.NewLine() // 4 bytes
//	_ = l.Encode(0, field.F32Value(1234), line)
//	v, _ := l.Decode(0, line)
//	fmt.Println(v.F32()) // 1234.1309, one step is 0.61
//
// # Bit Order
//
// Bit i of a line is bit i%8 of byte i/8, and bit 0 of a value lands at the
// field's offset. A line holds at most 256 fields and
// 287 bits (36 bytes).
//
// # Quantization
//
// A quantized field stores raw = round((v - add) / scale), clamped to
// [0, 2^length-1], and decodes raw*scale + add. Values outside the field's
// range saturate and NaN encodes as 0.
//
// # Thread Safety
//
// Layouts are immutable after compilation and safe for concurrent use.
// Lines are plain byte slices; concurrent writers to one line must
// synchronize.
package bitspec
