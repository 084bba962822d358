// Package cli implements the molic command-line interface.
//
// # Commands
//
//   - rip: decompose a graph into cliques and separators
//   - mcs: print the perfect numbering and boundary sets
//   - reach: list vertices reachable from a root, or the components
//   - generate: emit builder fixtures as graph documents
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. At debug level every numbering step is
// traced.
//
// # Configuration
//
// --config FILE reads a TOML file with defaults for the output format,
// verification, the connectivity policy and the log level.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/dfs"
	"github.com/victorsapucaia/molic/graphio"
	"github.com/victorsapucaia/molic/internal/buildinfo"
	"github.com/victorsapucaia/molic/mcs"
)

// ErrDisconnected is returned when a command that requires a connected graph
// receives a disconnected one without --allow-disconnected.
var ErrDisconnected = errors.New("graph is not connected")

// app holds state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	cfg        Config
}

// Execute runs the molic CLI and returns an error if any command fails.
// The error has already been reported on stderr when Execute returns.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		reportError(root.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err once, with diagnostics for non-decomposable graphs.
func reportError(w io.Writer, err error) {
	var nd *mcs.NotDecomposableError
	if errors.As(err, &nd) {
		renderNotDecomposable(w, nd)
		return
	}
	printError(w, "%v", err)
}

// newRootCmd creates the root cobra command with all subcommands registered.
// Output goes to cmd.OutOrStdout, logs to cmd.ErrOrStderr.
func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:           "molic",
		Short:         "molic decomposes chordal graphs into cliques and separators",
		Long:          `molic checks whether an undirected graph is decomposable (chordal) using Maximum Cardinality Search and, if so, lists its maximal cliques in an order with the running intersection property, together with their separators.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			level, err := cfg.level(a.verbose)
			if err != nil {
				return err
			}
			a.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML file with default settings")

	root.AddCommand(a.newRipCmd())
	root.AddCommand(a.newMCSCmd())
	root.AddCommand(a.newReachCmd())
	root.AddCommand(a.newGenerateCmd())

	return root
}

// loadGraph reads the graph document at path and enforces the connectivity
// precondition unless allowDisconnected is set.
func (a *app) loadGraph(ctx context.Context, path string, allowDisconnected bool) (*core.Graph, error) {
	logger := loggerFromContext(ctx)

	g, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded graph", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	connected, err := dfs.IsConnected(g)
	if err != nil {
		return nil, err
	}
	if !connected {
		if !allowDisconnected {
			return nil, fmt.Errorf("%s: %w (use --allow-disconnected to decompose each component)", path, ErrDisconnected)
		}
		logger.Warn("graph is not connected; components are joined by empty separators", "path", path)
	}

	return g, nil
}

// boolFlag returns the flag value when it was set explicitly, else the config value.
func boolFlag(cmd *cobra.Command, name string, flag, cfg bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return cfg
}

// stringFlag returns the flag value when it was set explicitly, else the config value.
func stringFlag(cmd *cobra.Command, name, flag, cfg string) string {
	if cmd.Flags().Changed(name) || cfg == "" {
		return flag
	}
	return cfg
}
