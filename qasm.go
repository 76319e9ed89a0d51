package qbuilder

import (
	"fmt"
	"sort"
	"strings"
)

// ToQASM renders the tick-ordered gate schedule as OpenQASM 2.0 text.
// Inert kinds and unresolvable gates become comments, so the export keeps
// the full operation list visible without claiming semantics for it.
func (c Circuit) ToQASM() string {
	ops := make([]Operation, len(c.Ops))
	copy(ops, c.Ops)
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Tick < ops[j].Tick })

	n := max(c.NumQubits, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", n)

	for _, op := range ops {
		if op.KindTag() != OpGate {
			fmt.Fprintf(&sb, "// %s %s\n", op.KindTag(), op.normalizedName())
			continue
		}
		kind, ok := ResolveGate(op.Name)
		if !ok || len(op.Targets) < kind.Arity() {
			fmt.Fprintf(&sb, "// unresolved gate %s\n", op.Name)
			continue
		}
		args := make([]string, kind.Arity())
		for i := range args {
			args[i] = fmt.Sprintf("q[%d]", op.Targets[i])
		}
		if kind.Parametrized() {
			fmt.Fprintf(&sb, "%s(%s) %s;\n",
				kind.mnemonic(), FormatParam(op.Param("theta", 0)), strings.Join(args, ", "))
		} else {
			fmt.Fprintf(&sb, "%s %s;\n", kind.mnemonic(), strings.Join(args, ", "))
		}
	}

	return sb.String()
}
