package random

import (
	"crypto/rand"
	"encoding/binary"
)

type Secure struct{}

func NewSecure() *Secure {
	return &Secure{}
}

func (s *Secure) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}
