package cli

import (
	"github.com/spf13/cobra"

	"github.com/victorsapucaia/molic/dfs"
	"github.com/victorsapucaia/molic/graphio"
)

func (a *app) newReachCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "reach FILE",
		Short: "List vertices reachable from a root, or all components",
		Example: `  molic reach graph.json --root A
  molic reach graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			if root != "" {
				reach, err := dfs.Reachable(g, root, dfs.WithContext(ctx))
				if err != nil {
					return err
				}
				loggerFromContext(ctx).Debug("traversed", "root", root, "reached", len(reach))
				renderReachable(w, root, reach)
				return nil
			}

			comps, err := dfs.Components(g, dfs.WithContext(ctx))
			if err != nil {
				return err
			}
			renderComponents(w, comps)
			if len(comps) > 1 {
				printWarning(w, "graph is not connected: %d components", len(comps))
			} else {
				printSuccess(w, "graph is connected")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "start vertex (default: list every component)")

	return cmd
}
