package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/VSPaone/qbuilder"
)

// qubitCeiling is where the 2^n state stops being interactive; the engine
// itself imposes no limit.
const qubitCeiling = 24

func main() {
	var (
		input      string
		shots      int
		seed       int64
		noiseType  string
		noiseParam float64
		mirror     int
		asJSON     bool
		htmlOut    string
		tui        bool
		qasm       bool
	)
	pflag.StringVarP(&input, "input", "i", "", "circuit JSON file (default: stdin)")
	pflag.IntVar(&shots, "shots", 0, "measurement shots (0 = analytic only)")
	pflag.Int64Var(&seed, "seed", 0, "RNG seed for reproducible shot outcomes")
	pflag.StringVar(&noiseType, "noise", "", "readout noise: depolarizing, amp-damp or phase-damp")
	pflag.Float64Var(&noiseParam, "noise-param", 0.02, "noise strength (flip probability / damping rate)")
	pflag.IntVar(&mirror, "mirror", 0, "mirror count (reserved by the editor protocol)")
	pflag.BoolVar(&asJSON, "json", false, "emit the result as JSON")
	pflag.StringVar(&htmlOut, "html", "", "write an HTML histogram to this file")
	pflag.BoolVar(&tui, "tui", false, "open the interactive result viewer")
	pflag.BoolVar(&qasm, "qasm", false, "print the OpenQASM 2.0 export and exit")
	pflag.Parse()

	logger := log.New(os.Stderr)

	circ, err := loadCircuit(input)
	if err != nil {
		logger.Fatal("cannot load circuit", "err", err)
	}

	if qasm {
		fmt.Print(circ.ToQASM())
		return
	}

	if circ.NumQubits > qubitCeiling {
		logger.Warn("qubit count beyond the practical ceiling; the state holds 2^n amplitudes",
			"qubits", circ.NumQubits, "ceiling", qubitCeiling)
	}
	warnUnknownGates(logger, circ)

	opts := qbuilder.Options{Shots: shots, Mirror: mirror}
	if pflag.CommandLine.Changed("seed") {
		opts.Seed = &seed
	}
	if noiseType != "" {
		opts.Noise = &qbuilder.NoiseSpec{Type: noiseType, Strength: noiseParam}
	}

	res := qbuilder.Simulate(circ, opts)

	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Fatal("encode result", "err", err)
		}
	case htmlOut != "":
		if err := writeChart(htmlOut, res); err != nil {
			logger.Fatal("write chart", "err", err)
		}
		logger.Info("histogram written", "file", htmlOut)
	case tui:
		if _, err := tea.NewProgram(newViewer(res), tea.WithAltScreen()).Run(); err != nil {
			logger.Fatal("viewer", "err", err)
		}
	default:
		fmt.Print(renderSummary(res))
	}
}

func loadCircuit(path string) (qbuilder.Circuit, error) {
	r := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return qbuilder.Circuit{}, err
		}
		defer f.Close()
		r = f
	}
	return qbuilder.DecodeCircuit(r)
}

// warnUnknownGates surfaces unresolvable gate references. The engine keeps
// its permissive no-op semantics; this only makes authoring slips visible.
func warnUnknownGates(logger *log.Logger, c qbuilder.Circuit) {
	for _, op := range c.Ops {
		if op.KindTag() != qbuilder.OpGate {
			continue
		}
		if _, ok := qbuilder.ResolveGate(op.Name); !ok {
			logger.Warn("unknown gate reference; the operation will not modify the state",
				"name", op.Name, "tick", op.Tick)
		}
	}
}
