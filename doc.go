// Package qbuilder simulates small quantum circuits by evolving a dense
// complex statevector and derives probabilities, raw amplitudes and
// optionally shot-based measurement counts from it.
//
// Basis index i encodes qubit k at bit position k (qubit 0 is the least
// significant bit). Rendered bitstrings are zero-padded to the qubit count
// with qubit n-1 first.
//
// The engine is deliberately permissive: malformed per-operation data
// (out-of-range or duplicate qubit indices, unknown gate references) leaves
// the state untouched instead of failing. Validation belongs to the editor
// and linter that produce the intermediate representation.
//
// Memory is O(2^n) amplitudes and evolution time is O(ops * 2^n), so the
// simulator is a teaching/preview tool, not a scalable backend. Counts
// beyond roughly 20-24 qubits are impractical for interactive use; the core
// imposes no hard limit.
//
// Simulate is synchronous and pure with respect to its inputs: each call
// owns its statevector and its random generator, so concurrent calls on
// independent circuits need no locking.
package qbuilder
