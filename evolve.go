package qbuilder

import (
	"math"
	"math/cmplx"
	"sort"
)

// evolve runs the gate schedule over a fresh statevector. Operations are
// stably sorted by tick so that equal ticks keep their input order. The
// second return latches true the first time a 2- or 3-qubit kernel actually
// applies — a structural "entangled-likely" heuristic, not an entanglement
// measure.
func evolve(c Circuit) (*StateVector, bool) {
	state := NewStateVector(c.NumQubits)

	ops := make([]Operation, len(c.Ops))
	copy(ops, c.Ops)
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Tick < ops[j].Tick })

	entangled := false
	for _, op := range ops {
		if op.KindTag() != OpGate {
			continue
		}
		kind, ok := ResolveGate(op.Name)
		if !ok {
			continue
		}
		if applyGate(state, kind, op) && kind.Arity() > 1 {
			entangled = true
		}
	}
	return state, entangled
}

// applyGate dispatches one resolved gate to its kernel and reports whether
// the kernel ran. Missing targets are treated like invalid ones: no-op.
func applyGate(s *StateVector, kind GateKind, op Operation) bool {
	t := op.Targets
	if len(t) < kind.Arity() {
		return false
	}
	switch kind {
	case GateCX:
		return s.ApplyCX(t[0], t[1])
	case GateCY:
		return s.ApplyCY(t[0], t[1])
	case GateCZ:
		return s.ApplyCZ(t[0], t[1])
	case GateSWAP:
		return s.ApplySWAP(t[0], t[1])
	case GateCCX:
		return s.ApplyCCX(t[0], t[1], t[2])
	case GateCSWAP:
		return s.ApplyCSWAP(t[0], t[1], t[2])
	default:
		return s.ApplyMatrix(kind.Matrix(op.Param("theta", 0)), t[0])
	}
}

// postSelect zeroes every amplitude whose bit q differs from the expected
// value, then rescales the survivors back to unit norm when any probability
// mass remains. Returns the retained mass and whether the projection was
// performed at all (an out-of-range qubit is a no-op).
func postSelect(s *StateVector, q, want int) (float64, bool) {
	if q < 0 || q >= s.NumQubits {
		return 0, false
	}
	bit := 1 << q
	wantSet := want != 0

	mass := 0.0
	for i, a := range s.Amplitudes {
		if (i&bit != 0) == wantSet {
			mass += real(a * cmplx.Conj(a))
		} else {
			s.Amplitudes[i] = 0
		}
	}

	if mass > 0 {
		norm := complex(math.Sqrt(mass), 0)
		for i := range s.Amplitudes {
			if (i&bit != 0) == wantSet {
				s.Amplitudes[i] /= norm
			}
		}
	}
	return mass, true
}
