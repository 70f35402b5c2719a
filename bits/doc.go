// Package bits reads and writes unsigned integers of up to 32 bits at
// arbitrary bit offsets inside a byte slice.
//
// # Bit Order
//
// Lines are addressed LSB-first: record bit i is bit i%8 of byte i/8, and
// bit 0 of a value lands at its offset.
//
//	offset 14, length 10:
//	byte 1   [xxxxxx.. ] bits 14-15 -> value bits 0-1
//	byte 2   [........ ] bits 16-23 -> value bits 2-9
//
// Decode and Encode perform no bounds checking. The caller must size the
// slice to hold offset+length bits.
package bits
