package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/victorsapucaia/molic/mcs"
	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "←"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Result Rendering
// =============================================================================

// renderDecomposition prints the clique sequence with separators and parents:
//
//	Cliques (2)
//	  C0  {A, B, C}
//	  C1  {A, C, D}  ← {A, C}  (C0)
func renderDecomposition(w io.Writer, res *rip.Result) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Cliques (%d)", len(res.Cliques))))
	parents := res.Parents()
	for i, c := range res.Cliques {
		line := fmt.Sprintf("  %s  %s", styleNumber.Render(fmt.Sprintf("C%d", i)), c)
		if p := parents[i]; p >= 0 {
			sep, _ := res.Separators[i].Nodes()
			line += styleDim.Render(fmt.Sprintf("  %s %s  (C%d)", iconArrow, sep, p))
		}
		fmt.Fprintln(w, line)
	}
}

// renderNumbering prints the perfect numbering with each boundary set.
func renderNumbering(w io.Writer, res *mcs.Result) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Numbering (%d)", len(res.Numbering))))
	for i, v := range res.Numbering {
		fmt.Fprintf(w, "  %s  %-8s %s\n", styleNumber.Render(fmt.Sprintf("%3d", i+1)), v, styleDim.Render(res.Boundaries[i].String()))
	}
}

// renderNotDecomposable explains where the perfect-numbering check failed.
func renderNotDecomposable(w io.Writer, nd *mcs.NotDecomposableError) {
	printError(w, "not decomposable: boundary of %s at step %d is not complete", nd.Vertex, nd.Step)
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  boundary %s, missing edge %s–%s",
		nodeset.New(nd.Boundary...), nd.Missing[0], nd.Missing[1])))
}

// renderComponents prints one line per connected component.
func renderComponents(w io.Writer, comps [][]string) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Components (%d)", len(comps))))
	for i, c := range comps {
		fmt.Fprintf(w, "  %s  %s\n", styleNumber.Render(fmt.Sprintf("%d", i)), "{"+strings.Join(c, ", ")+"}")
	}
}

// renderReachable prints the vertices reached from root.
func renderReachable(w io.Writer, root string, reach []string) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Reachable from %s (%d)", root, len(reach))))
	fmt.Fprintf(w, "  {%s}\n", strings.Join(reach, ", "))
}
