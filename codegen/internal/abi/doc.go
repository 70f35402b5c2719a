// Package abi computes Canonical ABI size, alignment and field offsets for
// the WIT record a decoded line unpacks into.
//
// Only the primitives a line can hold (bool, f32, f64) and records of them
// are handled. The same rules give the C struct layout on common ABIs:
//
//	Type    Size    Alignment
//	bool    1       1
//	f32     4       4
//	f64     8       8
//	record  sum     max field align
//
// This package is internal to codegen.
package abi
