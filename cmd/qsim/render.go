package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VSPaone/qbuilder"
)

// ──────────────────────────── Summary rendering ────────────────────────────

// probBar renders a probability as a fixed-width bar.
func probBar(p float64) string {
	filled := int(p*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

// renderSummary builds the default non-interactive report.
func renderSummary(res qbuilder.Result) string {
	var sb strings.Builder

	header := fmt.Sprintf("%d qubits · %d gates", res.NumQubits, res.GateCount)
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")

	if res.EntangledLikely {
		sb.WriteString(flagStyle.Render("entangled-likely"))
		sb.WriteString(dimStyle.Render(" (an entangling-capable gate ran — heuristic, not a measure)"))
		sb.WriteString("\n")
	}
	if res.PostSelectProb != nil {
		sb.WriteString(labelStyle.Render("post-selection retained "))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", *res.PostSelectProb)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(panelStyle.Render(renderProbabilities(res)))
	sb.WriteString("\n")

	if res.Counts != nil {
		sb.WriteString(panelStyle.Render(renderCounts(res)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderProbabilities lists the significant basis states with bars.
func renderProbabilities(res qbuilder.Result) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Probabilities"))
	sb.WriteString("\n")

	states := res.Significant(probFloor)
	if len(states) == 0 {
		sb.WriteString(dimStyle.Render("all amplitudes zero"))
		return sb.String()
	}
	for _, st := range states {
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			labelStyle.Render("|"+st.Label+"⟩"),
			probBar(st.Prob),
			valueStyle.Render(fmt.Sprintf("%8.4f", st.Prob)),
			dimStyle.Render(fmt.Sprintf("phase %+.3f", st.Phase)),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderCounts lists the shot histogram sorted by bitstring.
func renderCounts(res qbuilder.Result) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Counts"))
	sb.WriteString("\n")

	keys := make([]string, 0, len(res.Counts))
	total := 0
	for k, n := range res.Counts {
		keys = append(keys, k)
		total += n
	}
	sort.Strings(keys)

	for _, k := range keys {
		n := res.Counts[k]
		frac := 0.0
		if total > 0 {
			frac = float64(n) / float64(total)
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(k),
			probBar(frac),
			valueStyle.Render(fmt.Sprintf("%6d", n)),
		))
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%d shots", total)))
	return sb.String()
}
