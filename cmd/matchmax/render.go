package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/matchmax/matchmax/assign"
	"github.com/matchmax/matchmax/matrix"
	"github.com/matchmax/matchmax/matrixio"
)

var (
	colorAccent  = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorError   = lipgloss.Color("#E74C3C")
	colorBest    = lipgloss.Color("#F4D03F")
	colorDivider = lipgloss.Color("#16858E")
)

// solverResult pairs a solver name with its solution for the --all view.
type solverResult struct {
	name string
	sol  assign.Solution
}

// renderer holds the styles for terminal output. With styling disabled every
// style degrades to plain text.
type renderer struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	sum     lipgloss.Style
	best    lipgloss.Style
	errText lipgloss.Style
	box     lipgloss.Style
}

func newRenderer(color bool) *renderer {
	if !color {
		plain := lipgloss.NewStyle()
		return &renderer{title: plain, muted: plain, sum: plain, best: plain, errText: plain, box: plain}
	}

	return &renderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		sum:     lipgloss.NewStyle().Bold(true),
		best:    lipgloss.NewStyle().Bold(true).Foreground(colorBest),
		errText: lipgloss.NewStyle().Foreground(colorError),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1),
	}
}

func (r *renderer) errorLine(err error) string {
	return r.errText.Render("matchmax: " + err.Error())
}

// matrixBlock echoes the loaded matrix inside a box.
func (r *renderer) matrixBlock(m matrix.Matrix) string {
	header := r.title.Render(fmt.Sprintf("input %d×%d", m.Rows(), m.Cols()))
	body := strings.TrimRight(matrixio.Sprint(m), "\n")

	return r.box.Render(header+"\n"+body) + "\n"
}

// selectionLines formats each selected element as a "(row,col) = value" line.
func (r *renderer) selectionLines(sol assign.Solution) string {
	lines := lo.Map(sol.Selection, func(el assign.SelectedElement, _ int) string {
		return r.muted.Render(fmt.Sprintf("(%d,%d)", el.Row, el.Col)) +
			fmt.Sprintf(" = %d", el.Value)
	})

	return strings.Join(lines, "\n")
}

// solutionBlock renders a single solver's selection and total.
func (r *renderer) solutionBlock(name string, sol assign.Solution) string {
	var sb strings.Builder
	sb.WriteString(r.title.Render(name) + "\n")
	sb.WriteString(r.selectionLines(sol) + "\n")
	sb.WriteString(r.sum.Render(fmt.Sprintf("sum = %d", sol.Sum)) + "\n")

	return sb.String()
}

// comparisonBlock renders all solver results, marking the best total.
func (r *renderer) comparisonBlock(results []solverResult) string {
	bestSum := lo.Max(lo.Map(results, func(res solverResult, _ int) int64 {
		return res.sol.Sum
	}))

	var sb strings.Builder
	for _, res := range results {
		sb.WriteString(r.solutionBlock(res.name, res.sol))
		if res.sol.Sum == bestSum {
			sb.WriteString(r.best.Render("^ best") + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
