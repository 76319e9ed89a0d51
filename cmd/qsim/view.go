package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VSPaone/qbuilder"
)

// viewTab selects which result panel the viewer shows.
type viewTab int

const (
	tabProbabilities viewTab = iota
	tabAmplitudes
	tabCounts
	tabCount
)

var tabNames = [tabCount]string{"Probabilities", "Amplitudes", "Counts"}

// viewer is the interactive result browser.
type viewer struct {
	res    qbuilder.Result
	tab    viewTab
	amps   table.Model
	width  int
	height int
}

func newViewer(res qbuilder.Result) viewer {
	columns := []table.Column{
		{Title: "Basis", Width: 12},
		{Title: "Re", Width: 12},
		{Title: "Im", Width: 12},
		{Title: "Prob", Width: 10},
	}
	rows := make([]table.Row, 0, len(res.Amplitudes))
	for i, a := range res.Amplitudes {
		rows = append(rows, table.Row{
			qbuilder.BitString(i, res.NumQubits),
			fmt.Sprintf("%+.6f", a.Re),
			fmt.Sprintf("%+.6f", a.Im),
			fmt.Sprintf("%.6f", res.Probabilities[i]),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableRows),
	)
	return viewer{res: res, amps: t}
}

func (v viewer) Init() tea.Cmd {
	return nil
}

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.amps.SetHeight(max(msg.Height-8, 4))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "tab", "right", "l":
			v.tab = (v.tab + 1) % tabCount
		case "shift+tab", "left", "h":
			v.tab = (v.tab + tabCount - 1) % tabCount
		default:
			if v.tab == tabAmplitudes {
				var cmd tea.Cmd
				v.amps, cmd = v.amps.Update(msg)
				return v, cmd
			}
		}
	}
	return v, nil
}

func (v viewer) View() string {
	var body string
	switch v.tab {
	case tabProbabilities:
		body = renderProbabilities(v.res)
	case tabAmplitudes:
		body = v.amps.View()
	case tabCounts:
		if v.res.Counts == nil {
			body = dimStyle.Render("no shots taken — run with --shots")
		} else {
			body = renderCounts(v.res)
		}
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		v.renderTabs(),
		panelStyle.Render(body),
		dimStyle.Render("←→/tab switch  ↑↓ scroll  q quit"),
	)
	return frame
}

func (v viewer) renderTabs() string {
	var sb strings.Builder
	for i, name := range tabNames {
		label := " " + name + " "
		if viewTab(i) == v.tab {
			sb.WriteString(tabActiveStyle.Render(label))
		} else {
			sb.WriteString(dimStyle.Render(label))
		}
		if i < len(tabNames)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	return sb.String()
}
