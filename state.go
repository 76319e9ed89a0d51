package qbuilder

import "math/cmplx"

// StateVector holds the dense amplitudes of an n-qubit register.
// Basis index i encodes qubit k at bit position k.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector allocates the |0...0> state. Negative qubit counts clamp to
// zero, giving the one-element 2^0 state of an empty circuit.
func NewStateVector(numQubits int) *StateVector {
	if numQubits < 0 {
		numQubits = 0
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) validQubit(q int) bool {
	return q >= 0 && q < s.NumQubits
}

// validDistinct checks that all qubit arguments are in range and pairwise
// distinct. Kernels that fail this are silent no-ops.
func (s *StateVector) validDistinct(qubits ...int) bool {
	for i, q := range qubits {
		if !s.validQubit(q) {
			return false
		}
		for _, p := range qubits[:i] {
			if p == q {
				return false
			}
		}
	}
	return true
}

// ApplyMatrix applies a 2x2 unitary to one qubit, updating the pair
// (a_i, a_j) for every index i with bit q clear and j = i with bit q set.
// Reports whether the kernel ran; out-of-range targets do nothing.
func (s *StateVector) ApplyMatrix(m Matrix2, q int) bool {
	if !s.validQubit(q) {
		return false
	}
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = m[0][0]*a + m[0][1]*b
			s.Amplitudes[j] = m[1][0]*a + m[1][1]*b
		}
	}
	return true
}

// ApplyCX swaps each amplitude with its target-bit-flipped partner wherever
// the control bit is set.
func (s *StateVector) ApplyCX(control, target int) bool {
	if !s.validDistinct(control, target) {
		return false
	}
	cBit, tBit := 1<<control, 1<<target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return true
}

// ApplyCY applies the Y matrix to the target pair wherever the control bit
// is set: the target-0 amplitude becomes -i times its partner, the target-1
// amplitude becomes i times the original target-0 amplitude.
func (s *StateVector) ApplyCY(control, target int) bool {
	if !s.validDistinct(control, target) {
		return false
	}
	cBit, tBit := 1<<control, 1<<target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
	return true
}

// ApplyCZ negates the amplitude wherever both bits are set.
func (s *StateVector) ApplyCZ(control, target int) bool {
	if !s.validDistinct(control, target) {
		return false
	}
	cBit, tBit := 1<<control, 1<<target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] = -s.Amplitudes[i]
		}
	}
	return true
}

// ApplySWAP exchanges amplitudes between indices whose two bits differ.
// Each unordered pair is visited once.
func (s *StateVector) ApplySWAP(q0, q1 int) bool {
	if !s.validDistinct(q0, q1) {
		return false
	}
	b0, b1 := 1<<q0, 1<<q1
	for i := range s.Amplitudes {
		if i&b0 != 0 && i&b1 == 0 {
			j := (i &^ b0) | b1
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return true
}

// ApplyCCX is CX gated on two control bits both set.
func (s *StateVector) ApplyCCX(c1, c2, target int) bool {
	if !s.validDistinct(c1, c2, target) {
		return false
	}
	b1, b2, tBit := 1<<c1, 1<<c2, 1<<target
	for i := range s.Amplitudes {
		if i&b1 != 0 && i&b2 != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return true
}

// ApplyCSWAP is SWAP applied only where the control bit is set.
func (s *StateVector) ApplyCSWAP(control, q0, q1 int) bool {
	if !s.validDistinct(control, q0, q1) {
		return false
	}
	cBit, b0, b1 := 1<<control, 1<<q0, 1<<q1
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&b0 != 0 && i&b1 == 0 {
			j := (i &^ b0) | b1
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return true
}

// Probabilities returns the squared magnitude of every amplitude.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}
