package qbuilder

import (
	"fmt"
	"math/bits"
	"math/cmplx"
)

// Options configures one Simulate call.
type Options struct {
	// Shots is the number of measurement samples to draw; 0 means
	// analytic-only (no counts in the result).
	Shots int `json:"shots"`
	// Seed, when set, selects the reproducible generator. Absent means
	// non-reproducible randomness.
	Seed *int64 `json:"seed,omitempty"`
	// Noise optionally corrupts sampled outcomes before aggregation.
	Noise *NoiseSpec `json:"noise,omitempty"`
	// Mirror is part of the accepted configuration surface but is not
	// consumed by the engine.
	Mirror int `json:"mirror,omitempty"`
}

// Amplitude is the boundary representation of one complex amplitude.
type Amplitude struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Result is everything a simulation call produces.
type Result struct {
	NumQubits       int            `json:"qubits"`
	GateCount       int            `json:"gateCount"`
	Probabilities   []float64      `json:"probabilities"`
	Amplitudes      []Amplitude    `json:"amplitudes"`
	Counts          map[string]int `json:"counts,omitempty"`
	EntangledLikely bool           `json:"entangledLikely"`
	PostSelectProb  *float64       `json:"postSelectProb,omitempty"`
}

// BitString renders basis index i as a zero-padded binary string of width
// numQubits, most significant qubit first.
func BitString(index, numQubits int) string {
	return fmt.Sprintf("%0*b", max(numQubits, 1), index)
}

// Simulate evolves the circuit, applies the optional post-selection
// projection, and assembles probabilities, amplitudes and (for shots > 0)
// noisy measurement counts. It never fails: malformed per-operation data
// degrades to no-ops per the permissive policy.
func Simulate(c Circuit, opts Options) Result {
	state, entangled := evolve(c)

	// Only the first postselect note is honored.
	var psProb *float64
	for _, op := range c.Ops {
		if !op.IsPostSelect() {
			continue
		}
		if len(op.Targets) > 0 {
			want := int(op.Param("value", 1))
			if mass, ok := postSelect(state, op.Targets[0], want); ok {
				psProb = &mass
			}
		}
		break
	}

	probs := state.Probabilities()

	res := Result{
		NumQubits:       state.NumQubits,
		GateCount:       c.GateCount(),
		Probabilities:   probs,
		Amplitudes:      make([]Amplitude, len(state.Amplitudes)),
		EntangledLikely: entangled,
		PostSelectProb:  psProb,
	}
	for i, a := range state.Amplitudes {
		res.Amplitudes[i] = Amplitude{Re: real(a), Im: imag(a)}
	}

	if opts.Shots > 0 {
		rng := newSource(opts.Seed)
		raw := sampleCounts(probs, opts.Shots, state.NumQubits, opts.Noise, rng)
		res.Counts = make(map[string]int, len(raw))
		for idx, n := range raw {
			res.Counts[BitString(idx, state.NumQubits)] = n
		}
	}
	return res
}

// QubitProbability is the marginal outcome distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64 `json:"p0"`
	Prob1 float64 `json:"p1"`
}

// Marginals derives per-qubit outcome probabilities from the full
// distribution.
func (r Result) Marginals() []QubitProbability {
	marg := make([]QubitProbability, r.NumQubits)
	for i, p := range r.Probabilities {
		for q := 0; q < r.NumQubits; q++ {
			if i&(1<<q) != 0 {
				marg[q].Prob1 += p
			} else {
				marg[q].Prob0 += p
			}
		}
	}
	return marg
}

// BasisState summarizes one significant amplitude for display.
type BasisState struct {
	Index   int
	Label   string
	Prob    float64
	Phase   float64
	Hamming int
}

// Significant returns the basis states whose probability exceeds the floor,
// in index order.
func (r Result) Significant(floor float64) []BasisState {
	var states []BasisState
	for i, p := range r.Probabilities {
		if p <= floor {
			continue
		}
		a := complex(r.Amplitudes[i].Re, r.Amplitudes[i].Im)
		states = append(states, BasisState{
			Index:   i,
			Label:   BitString(i, r.NumQubits),
			Prob:    p,
			Phase:   cmplx.Phase(a),
			Hamming: bits.OnesCount(uint(i)),
		})
	}
	return states
}
