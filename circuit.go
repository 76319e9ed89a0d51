package qbuilder

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OpKind tags what an operation means to the engine. Only gate operations
// and the postselect note touch the statevector; the remaining kinds are
// inert to the state but still counted and echoed.
type OpKind string

const (
	OpGate      OpKind = "gate"
	OpIO        OpKind = "io"
	OpOracle    OpKind = "oracle"
	OpAlgorithm OpKind = "algorithm"
	OpNote      OpKind = "note"
)

// Param is a numeric operation parameter. It unmarshals from a JSON number
// or from a pi-expression string such as "pi/2" or "3*pi/4".
type Param float64

func (p *Param) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Param(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parameter must be a number or a pi expression: %w", err)
	}
	v, ok := ParseParamExpr(s)
	if !ok {
		return fmt.Errorf("unparseable parameter %q", s)
	}
	*p = Param(v)
	return nil
}

// Operation is one entry of the editor's intermediate representation.
// Tick is a scheduling key establishing relative execution order, not a
// time unit.
type Operation struct {
	Kind    OpKind           `json:"kind"`
	Name    string           `json:"name"`
	Targets []int            `json:"targets"`
	Params  map[string]Param `json:"params,omitempty"`
	Tick    int              `json:"tick"`
}

// Param returns the named parameter or the fallback when absent.
func (o Operation) Param(name string, fallback float64) float64 {
	if v, ok := o.Params[name]; ok {
		return float64(v)
	}
	return fallback
}

// KindTag normalizes the operation kind for comparison.
func (o Operation) KindTag() OpKind {
	return OpKind(strings.ToLower(strings.TrimSpace(string(o.Kind))))
}

// normalizedName lowercases the reference and strips a namespace prefix.
func (o Operation) normalizedName() string {
	n := strings.ToLower(strings.TrimSpace(o.Name))
	if i := strings.LastIndexByte(n, '.'); i >= 0 {
		n = n[i+1:]
	}
	return n
}

// IsPostSelect reports whether the operation is the post-selection marker.
func (o Operation) IsPostSelect() bool {
	return o.KindTag() == OpNote && o.normalizedName() == "postselect"
}

// Circuit is the representation consumed by Simulate: a declared qubit
// count plus operations ordered by tick.
type Circuit struct {
	NumQubits int         `json:"qubits"`
	Ops       []Operation `json:"ops"`
}

// DecodeCircuit reads a circuit from its JSON wire form.
func DecodeCircuit(r io.Reader) (Circuit, error) {
	var c Circuit
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Circuit{}, err
	}
	return c, nil
}

// GateCount counts gate-kind operations, resolvable or not.
func (c Circuit) GateCount() int {
	n := 0
	for _, op := range c.Ops {
		if op.KindTag() == OpGate {
			n++
		}
	}
	return n
}
