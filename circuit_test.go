package qbuilder

import (
	"math"
	"strings"
	"testing"
)

func TestDecodeCircuit(t *testing.T) {
	src := `{
		"qubits": 2,
		"ops": [
			{"kind": "gate", "name": "H", "targets": [0], "tick": 0},
			{"kind": "gate", "name": "gate.rx", "targets": [1], "params": {"theta": "pi/2"}, "tick": 1},
			{"kind": "gate", "name": "RZ", "targets": [0], "params": {"theta": 0.25}, "tick": 2},
			{"kind": "io", "name": "measure", "targets": [0], "tick": 3},
			{"kind": "note", "name": "postselect", "targets": [1], "params": {"value": 1}, "tick": 4}
		]
	}`
	c, err := DecodeCircuit(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeCircuit: %v", err)
	}
	if c.NumQubits != 2 || len(c.Ops) != 5 {
		t.Fatalf("decoded shape wrong: qubits=%d ops=%d", c.NumQubits, len(c.Ops))
	}
	if c.GateCount() != 3 {
		t.Errorf("GateCount = %d, want 3", c.GateCount())
	}

	if got := c.Ops[1].Param("theta", 0); math.Abs(got-math.Pi/2) > tol {
		t.Errorf("pi-expression param: got %g, want %g", got, math.Pi/2)
	}
	if got := c.Ops[2].Param("theta", 0); got != 0.25 {
		t.Errorf("numeric param: got %g, want 0.25", got)
	}
	if got := c.Ops[0].Param("theta", 1.5); got != 1.5 {
		t.Errorf("absent param must fall back: got %g", got)
	}

	if !c.Ops[4].IsPostSelect() {
		t.Error("note postselect not recognized")
	}
	if c.Ops[3].IsPostSelect() {
		t.Error("io op must not be a postselect marker")
	}
}

func TestDecodeCircuitBadParam(t *testing.T) {
	src := `{"qubits": 1, "ops": [{"kind": "gate", "name": "RX", "targets": [0], "params": {"theta": "banana"}}]}`
	if _, err := DecodeCircuit(strings.NewReader(src)); err == nil {
		t.Error("unparseable parameter expression must fail decoding")
	}
}

func TestKindTagNormalizes(t *testing.T) {
	op := Operation{Kind: " Gate "}
	if op.KindTag() != OpGate {
		t.Errorf("KindTag = %q, want %q", op.KindTag(), OpGate)
	}
}

func TestIsPostSelectNamespaced(t *testing.T) {
	op := Operation{Kind: OpNote, Name: "Note.PostSelect", Targets: []int{0}}
	if !op.IsPostSelect() {
		t.Error("namespaced postselect reference not recognized")
	}
}
