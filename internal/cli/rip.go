package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/victorsapucaia/molic/graphio"
	"github.com/victorsapucaia/molic/mcs"
	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

type ripOpts struct {
	format            string
	verify            bool
	allowDisconnected bool
	start             string
}

func (a *app) newRipCmd() *cobra.Command {
	var opts ripOpts

	cmd := &cobra.Command{
		Use:   "rip FILE",
		Short: "Decompose a graph into cliques and separators",
		Long: `Decompose reads a graph document (.json or .toml), verifies that it is
decomposable, and prints its maximal cliques in running-intersection order with
their separators and clique-tree parents.`,
		Example: `  molic rip graph.json
  molic rip graph.toml --format json --verify
  molic rip graph.json --format svg > tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringFlag(cmd, "format", opts.format, a.cfg.Format)
			opts.verify = boolFlag(cmd, "verify", opts.verify, a.cfg.Verify)
			opts.allowDisconnected = boolFlag(cmd, "allow-disconnected", opts.allowDisconnected, a.cfg.AllowDisconnected)
			return a.runRip(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, dot, svg")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check structural invariants of the result")
	cmd.Flags().BoolVar(&opts.allowDisconnected, "allow-disconnected", false, "accept disconnected graphs")
	cmd.Flags().StringVar(&opts.start, "start", "", "vertex numbered first (default: first in the document)")

	return cmd
}

func (a *app) runRip(ctx context.Context, w io.Writer, path string, opts ripOpts) error {
	logger := loggerFromContext(ctx)

	switch opts.format {
	case formatText, formatJSON, formatDOT, formatSVG:
	default:
		return fmt.Errorf("unknown format %q (want text, json, dot or svg)", opts.format)
	}

	g, err := a.loadGraph(ctx, path, opts.allowDisconnected)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := rip.RIP(g, searchOptions(ctx, opts.start)...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Decomposed %d vertices into %d cliques", len(res.Numbering), len(res.Cliques)))

	if opts.verify {
		if err := rip.Verify(g, res); err != nil {
			return fmt.Errorf("%s: verify: %w", path, err)
		}
		logger.Info("verified", "cliques", len(res.Cliques))
	}

	switch opts.format {
	case formatJSON:
		return graphio.WriteResultJSON(res, w)
	case formatDOT:
		_, err := io.WriteString(w, graphio.ToDOT(res))
		return err
	case formatSVG:
		svg, err := graphio.RenderSVG(ctx, graphio.ToDOT(res))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		renderDecomposition(w, res)
		if opts.verify {
			printSuccess(w, "running intersection property holds")
		}
		return nil
	}
}

// searchOptions builds the mcs options shared by rip and mcs: the start vertex
// and a debug trace of every numbering step.
func searchOptions(ctx context.Context, start string) []mcs.Option {
	logger := loggerFromContext(ctx)

	opts := []mcs.Option{
		mcs.WithOnNumber(func(step int, id string, boundary nodeset.Set) error {
			logger.Debug("numbered", "step", step, "vertex", id, "boundary", boundary.String())
			return ctx.Err()
		}),
	}
	if start != "" {
		opts = append(opts, mcs.WithStart(start))
	}
	return opts
}
