package bits

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestEncodeDecodeAligned(t *testing.T) {
	line := make([]byte, 8)

	Encode(1, line, 0, 8)
	Encode(2, line, 8, 8)

	if got := Decode(line, 0, 8); got != 1 {
		t.Errorf("first byte: got %d, want 1", got)
	}
	if got := Decode(line, 8, 8); got != 2 {
		t.Errorf("second byte: got %d, want 2", got)
	}
	if !bytes.Equal(line[:2], []byte{0x01, 0x02}) {
		t.Errorf("line = %x, want 0102", line[:2])
	}
}

func TestEncodeDecodeSpanning(t *testing.T) {
	line := make([]byte, 8)
	Encode(600, line, 14, 10)

	if got := Decode(line, 14, 10); got != 600 {
		t.Errorf("got %d, want 600", got)
	}
	// 600 = 0b10_0101_1000: bits 0-1 -> byte 1 bits 6-7, bits 2-9 -> byte 2
	if line[1] != 0x00 || line[2] != 0x96 {
		t.Errorf("line = %08b %08b, want 00000000 10010110", line[1], line[2])
	}
}

func TestEncodeDoesNotDisturbNeighbours(t *testing.T) {
	line := make([]byte, 3)

	Encode(0x2ABC, line, 0, 14)
	before := Decode(line, 0, 14)

	for _, v := range []uint32{0, 1, 0x3FF, 0x155, 600} {
		Encode(v, line, 14, 10)
		if got := Decode(line, 0, 14); got != before {
			t.Fatalf("first field perturbed by %d: got %#x, want %#x", v, got, before)
		}
		if got := Decode(line, 14, 10); got != v {
			t.Errorf("second field: got %d, want %d", got, v)
		}
	}
}

func TestEncodeOverwritesPreviousValue(t *testing.T) {
	line := []byte{0xFF, 0xFF, 0xFF}
	Encode(0, line, 3, 13)

	want := []byte{0x07, 0x00, 0xFF}
	if !bytes.Equal(line, want) {
		t.Errorf("line = %08b, want %08b", line, want)
	}
}

func TestEncodeIgnoresHighBits(t *testing.T) {
	line := make([]byte, 2)
	Encode(0xFFFF, line, 4, 4)

	if !bytes.Equal(line, []byte{0xF0, 0x00}) {
		t.Errorf("line = %08b", line)
	}
}

func TestFullWidth(t *testing.T) {
	tests := []struct {
		name   string
		offset uint8
		value  uint32
	}{
		{"aligned", 0, 0xDEADBEEF},
		{"unaligned", 3, 0xDEADBEEF},
		{"max", 7, 0xFFFFFFFF},
		{"last_offset", 255, 0x80000001},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := make([]byte, BytesFor(uint16(tc.offset)+32))
			Encode(tc.value, line, tc.offset, 32)
			if got := Decode(line, tc.offset, 32); got != tc.value {
				t.Errorf("got %#x, want %#x", got, tc.value)
			}
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		length := uint8(rng.Intn(MaxLength) + 1)
		offset := uint8(rng.Intn(MaxOffset + 1))
		line := make([]byte, BytesFor(uint16(offset)+uint16(length)))
		rng.Read(line)
		orig := append([]byte(nil), line...)

		v := rng.Uint32() & Mask(length)
		Encode(v, line, offset, length)

		if got := Decode(line, offset, length); got != v {
			t.Fatalf("offset %d length %d: got %#x, want %#x", offset, length, got, v)
		}

		// Every bit outside the range must be unchanged.
		p := Position{Offset: offset, Length: length}
		for bit := 0; bit < len(line)*8; bit++ {
			if uint16(bit) >= uint16(p.Offset) && uint16(bit) < p.End() {
				continue
			}
			if bitAt(line, bit) != bitAt(orig, bit) {
				t.Fatalf("offset %d length %d: bit %d changed", offset, length, bit)
			}
		}

		// Re-encoding the decoded value reproduces the line.
		Encode(Decode(line, offset, length), line, offset, length)
		if got := Decode(line, offset, length); got != v {
			t.Fatalf("re-encode changed value")
		}
	}
}

func TestSetBit(t *testing.T) {
	line := []byte{0xA5}

	SetBit(line, 1, true)
	if line[0] != 0xA7 {
		t.Errorf("set: got %08b, want 10100111", line[0])
	}
	if !Bit(line, 1) {
		t.Error("bit 1 should be set")
	}

	SetBit(line, 0, false)
	if line[0] != 0xA6 {
		t.Errorf("clear: got %08b, want 10100110", line[0])
	}
}

func TestPosition(t *testing.T) {
	a := Position{Offset: 0, Length: 14}
	b := Position{Offset: 14, Length: 10}
	c := Position{Offset: 13, Length: 2}

	if a.End() != 14 {
		t.Errorf("End = %d, want 14", a.End())
	}
	if a.Overlaps(b) {
		t.Error("adjacent positions should not overlap")
	}
	if !a.Overlaps(c) || !b.Overlaps(c) {
		t.Error("c straddles a and b")
	}
	if b.Max() != 1023 {
		t.Errorf("Max = %d, want 1023", b.Max())
	}
}

func TestBytesFor(t *testing.T) {
	tests := []struct{ bits, want uint16 }{
		{1, 1}, {8, 1}, {9, 2}, {23, 3}, {24, 3}, {25, 4}, {287, 36},
	}
	for _, tc := range tests {
		if got := BytesFor(tc.bits); got != tc.want {
			t.Errorf("BytesFor(%d) = %d, want %d", tc.bits, got, tc.want)
		}
	}
}

func bitAt(buf []byte, i int) bool {
	return buf[i/8]&(1<<(i%8)) != 0
}
