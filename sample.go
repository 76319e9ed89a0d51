package qbuilder

import (
	"math"
	"sort"
)

// Readout-noise kinds accepted on the options surface.
const (
	NoiseDepolarizing = "depolarizing"
	NoiseAmpDamp      = "amp-damp"
	NoisePhaseDamp    = "phase-damp"
)

// NoiseSpec selects the per-bit readout-noise model applied to each sampled
// outcome. Strength is the flip probability (depolarizing) or damping rate
// (amp-damp); phase-damp carries one but is inert at readout.
type NoiseSpec struct {
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// cumulative builds the prefix-sum distribution, renormalizing by the total
// when floating error pulls it off 1. A zero-mass vector stays all zero.
func cumulative(probs []float64) []float64 {
	cum := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cum[i] = total
	}
	if total > 0 && math.Abs(total-1) > 1e-12 {
		for i := range cum {
			cum[i] /= total
		}
	}
	return cum
}

// sampleIndex draws one basis index: the first cumulative entry not less
// than a uniform draw in [0,1). An all-zero distribution resolves to 0.
func sampleIndex(cum []float64, rng uniformSource) int {
	u := rng.Float64()
	i := sort.SearchFloat64s(cum, u)
	if i >= len(cum) {
		return 0
	}
	return i
}

// corrupt applies readout noise to a sampled basis index, one independent
// decision per bit. Bits are visited from qubit 0 upward and amp-damp draws
// only for bits currently 1; that draw order is part of the seeded
// reproducibility contract. Unknown kinds corrupt nothing.
func corrupt(index, numQubits int, spec *NoiseSpec, rng uniformSource) int {
	if spec == nil {
		return index
	}
	switch spec.Type {
	case NoiseDepolarizing:
		for q := 0; q < numQubits; q++ {
			if rng.Float64() < spec.Strength {
				index ^= 1 << q
			}
		}
	case NoiseAmpDamp:
		// Asymmetric: 1 bits decay to 0, 0 bits never flip up.
		for q := 0; q < numQubits; q++ {
			if index&(1<<q) != 0 && rng.Float64() < spec.Strength {
				index &^= 1 << q
			}
		}
	case NoisePhaseDamp:
		// No effect on readout populations.
	}
	return index
}

// sampleCounts draws shots from the distribution and aggregates them by raw
// basis index. Bitstring keys are produced later, at the result boundary.
func sampleCounts(probs []float64, shots, numQubits int, spec *NoiseSpec, rng uniformSource) map[int]int {
	cum := cumulative(probs)
	counts := make(map[int]int)
	for s := 0; s < shots; s++ {
		idx := sampleIndex(cum, rng)
		idx = corrupt(idx, numQubits, spec, rng)
		counts[idx]++
	}
	return counts
}
