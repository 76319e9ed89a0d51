package qbuilder

import (
	"math"
	"math/cmplx"
	"strings"
)

// Matrix2 is a 2x2 unitary in row-major order over the basis [|0>, |1>].
type Matrix2 [2][2]complex128

// GateKind enumerates the closed gate set. Every kind carries a fixed arity
// and either a 2x2 matrix (single-qubit kinds) or a dedicated kernel on
// StateVector (multi-qubit kinds).
type GateKind int

const (
	GateX GateKind = iota
	GateY
	GateZ
	GateH
	GateS
	GateT
	GateRX
	GateRY
	GateRZ
	GateCX
	GateCY
	GateCZ
	GateSWAP
	GateCCX
	GateCSWAP
)

var gateNames = map[GateKind]string{
	GateX:     "X",
	GateY:     "Y",
	GateZ:     "Z",
	GateH:     "H",
	GateS:     "S",
	GateT:     "T",
	GateRX:    "RX",
	GateRY:    "RY",
	GateRZ:    "RZ",
	GateCX:    "CX",
	GateCY:    "CY",
	GateCZ:    "CZ",
	GateSWAP:  "SWAP",
	GateCCX:   "CCX",
	GateCSWAP: "CSWAP",
}

var gatesByName = func() map[string]GateKind {
	m := make(map[string]GateKind, len(gateNames))
	for k, name := range gateNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

func (g GateKind) String() string {
	if name, ok := gateNames[g]; ok {
		return name
	}
	return "?"
}

// mnemonic is the lowercase QASM spelling of the gate.
func (g GateKind) mnemonic() string {
	return strings.ToLower(g.String())
}

// Arity returns how many distinct qubit arguments the gate consumes.
func (g GateKind) Arity() int {
	switch g {
	case GateCX, GateCY, GateCZ, GateSWAP:
		return 2
	case GateCCX, GateCSWAP:
		return 3
	default:
		return 1
	}
}

// Parametrized reports whether the gate takes a rotation angle.
func (g GateKind) Parametrized() bool {
	return g == GateRX || g == GateRY || g == GateRZ
}

// ResolveGate maps an operation reference to its gate kind. References are
// case-insensitive and may carry a namespace prefix ("gate.x").
func ResolveGate(name string) (GateKind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndexByte(n, '.'); i >= 0 {
		n = n[i+1:]
	}
	k, ok := gatesByName[n]
	return k, ok
}

// Matrix returns the 2x2 unitary for a single-qubit kind. theta feeds the
// rotation generators and is ignored by the fixed gates. Multi-qubit kinds
// have dedicated kernels and fall through to the identity.
func (g GateKind) Matrix(theta float64) Matrix2 {
	switch g {
	case GateX:
		return Matrix2{{0, 1}, {1, 0}}
	case GateY:
		return Matrix2{{0, -1i}, {1i, 0}}
	case GateZ:
		return Matrix2{{1, 0}, {0, -1}}
	case GateH:
		h := complex(1/math.Sqrt2, 0)
		return Matrix2{{h, h}, {h, -h}}
	case GateS:
		return Matrix2{{1, 0}, {0, 1i}}
	case GateT:
		return Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
	case GateRX:
		c := complex(math.Cos(theta/2), 0)
		js := complex(0, -math.Sin(theta/2))
		return Matrix2{{c, js}, {js, c}}
	case GateRY:
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return Matrix2{{c, -s}, {s, c}}
	case GateRZ:
		// diag(e^{-i theta/2}, e^{i theta/2})
		p := cmplx.Exp(complex(0, theta/2))
		return Matrix2{{cmplx.Conj(p), 0}, {0, p}}
	}
	return Matrix2{{1, 0}, {0, 1}}
}
