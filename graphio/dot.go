package graphio

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

// ToDOT converts a decomposition into an undirected Graphviz DOT clique tree.
// Each clique C_i becomes a box "C<i>" labeled with its members. Each clique
// with a parent is joined to it by an edge labeled with the separator; empty
// separators (components of a disconnected input) are drawn dashed.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(res *rip.Result) string {
	var buf bytes.Buffer
	buf.WriteString("graph CliqueTree {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	if res == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	for i, c := range res.Cliques {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", cliqueID(i), joinIDs(c))
	}

	buf.WriteString("\n")
	for i, p := range res.Parents() {
		if p < 0 {
			continue
		}
		sep, _ := res.Separators[i].Nodes()
		attrs := []string{fmt.Sprintf("label=%q", joinIDs(sep))}
		if sep.IsEmpty() {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", cliqueID(p), cliqueID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cliqueID(i int) string {
	return fmt.Sprintf("C%d", i)
}

func joinIDs(s nodeset.Set) string {
	if s.IsEmpty() {
		return "∅"
	}
	return strings.Join(s.IDs(), ", ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
