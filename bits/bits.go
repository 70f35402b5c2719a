package bits

// MaxLength is the widest value a single position can hold.
const MaxLength = 32

// MaxOffset is the highest bit a position may start at.
const MaxOffset = 255

// Position locates a value inside a line.
type Position struct {
	Offset uint8 `json:"offset"`
	Length uint8 `json:"length"`
}

// End returns the first bit past the position.
func (p Position) End() uint16 {
	return uint16(p.Offset) + uint16(p.Length)
}

// Overlaps reports whether p and o share any bit.
func (p Position) Overlaps(o Position) bool {
	return uint16(p.Offset) < o.End() && uint16(o.Offset) < p.End()
}

// Max returns the largest value the position can hold.
func (p Position) Max() uint32 {
	return Mask(p.Length)
}

// Mask returns a value with the low length bits set.
func Mask(length uint8) uint32 {
	if length >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<length - 1
}

// BytesFor returns the number of bytes needed to hold n bits.
func BytesFor(n uint16) uint16 {
	return (n + 7) / 8
}

// Decode returns the length bits starting at offset.
// Bits outside the range do not influence the result.
func Decode(buf []byte, offset, length uint8) uint32 {
	var v uint32
	pos := uint(offset)
	var done uint
	for done < uint(length) {
		shift := pos % 8
		n := 8 - shift
		if rem := uint(length) - done; n > rem {
			n = rem
		}
		chunk := uint32(buf[pos/8]>>shift) & (uint32(1)<<n - 1)
		v |= chunk << done
		done += n
		pos += n
	}
	return v
}

// Encode writes the low length bits of v starting at offset.
// Every other bit of every touched byte is preserved.
func Encode(v uint32, buf []byte, offset, length uint8) {
	pos := uint(offset)
	var done uint
	for done < uint(length) {
		shift := pos % 8
		n := 8 - shift
		if rem := uint(length) - done; n > rem {
			n = rem
		}
		mask := byte((uint32(1)<<n - 1) << shift)
		chunk := byte(v>>done) << shift
		idx := pos / 8
		buf[idx] = buf[idx]&^mask | chunk&mask
		done += n
		pos += n
	}
}

// Get decodes the value at p.
func Get(buf []byte, p Position) uint32 {
	return Decode(buf, p.Offset, p.Length)
}

// Put encodes v at p.
func Put(buf []byte, p Position, v uint32) {
	Encode(v, buf, p.Offset, p.Length)
}

// Bit reports whether the bit at offset is set.
func Bit(buf []byte, offset uint8) bool {
	return buf[offset/8]&(1<<(offset%8)) != 0
}

// SetBit sets or clears the bit at offset, leaving the rest of its byte untouched.
func SetBit(buf []byte, offset uint8, on bool) {
	mask := byte(1) << (offset % 8)
	if on {
		buf[offset/8] |= mask
	} else {
		buf[offset/8] &^= mask
	}
}
