// Package wasmio stores packed lines in WebAssembly linear memory.
//
// A Records view treats memory from a base address as an array of
// fixed-stride lines, one per record, each laid out by a compiled layout.
// Guest code receives the base address and the layout tables from codegen
// and reads the same bytes the host wrote.
//
// Views into memory are taken per call, so records stay valid across
// memory.grow.
package wasmio
