package qbuilder

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// uniformSource yields uniform float64 values in [0, 1). Each simulation
// call owns one source; nothing is shared between calls.
type uniformSource interface {
	Float64() float64
}

// mulberry32 is the deterministic 32-bit mix generator used for seeded runs.
// The mixing constants are part of the wire contract: any conformant port
// must produce the identical sequence for the same seed, so identical seeds
// give byte-identical shot counts everywhere. All arithmetic wraps in uint32.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed int64) *mulberry32 {
	return &mulberry32{state: uint32(seed)}
}

func (m *mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / (1 << 32)
}

// newSource picks the generator for one run: the reproducible mixer when a
// seed is given, otherwise a PCG seeded from the OS entropy pool.
func newSource(seed *int64) uniformSource {
	if seed != nil {
		return newMulberry32(*seed)
	}
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xda942042e4dd58b5))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
