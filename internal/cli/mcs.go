package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/victorsapucaia/molic/mcs"
)

type mcsOpts struct {
	format            string
	allowDisconnected bool
	start             string
}

// numberingDocument is the JSON form of an mcs.Result.
type numberingDocument struct {
	Numbering  []string   `json:"numbering"`
	Boundaries [][]string `json:"boundaries"`
}

func (a *app) newMCSCmd() *cobra.Command {
	var opts mcsOpts

	cmd := &cobra.Command{
		Use:   "mcs FILE",
		Short: "Print the perfect numbering and boundary sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringFlag(cmd, "format", opts.format, a.cfg.Format)
			if !cmd.Flags().Changed("format") && opts.format != formatJSON {
				// dot and svg from the config file only apply to rip.
				opts.format = formatText
			}
			opts.allowDisconnected = boolFlag(cmd, "allow-disconnected", opts.allowDisconnected, a.cfg.AllowDisconnected)
			return a.runMCS(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json")
	cmd.Flags().BoolVar(&opts.allowDisconnected, "allow-disconnected", false, "accept disconnected graphs")
	cmd.Flags().StringVar(&opts.start, "start", "", "vertex numbered first (default: first in the document)")

	return cmd
}

func (a *app) runMCS(ctx context.Context, w io.Writer, path string, opts mcsOpts) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	g, err := a.loadGraph(ctx, path, opts.allowDisconnected)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	res, err := mcs.Search(g, searchOptions(ctx, opts.start)...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Numbered %d vertices", len(res.Numbering)))

	if opts.format == formatJSON {
		doc := numberingDocument{
			Numbering:  res.Numbering,
			Boundaries: make([][]string, len(res.Boundaries)),
		}
		for i, b := range res.Boundaries {
			doc.Boundaries[i] = b.IDs()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	renderNumbering(w, res)
	return nil
}
