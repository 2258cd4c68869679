// Package main provides the sociograph CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/config"
	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/loader"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the exit code.
func run(args []string) int {
	app := &app{}
	root := newRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
	}

	return exitCode(err)
}

// app carries per-invocation state shared by all subcommands.
type app struct {
	configPath string
	input      string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sociograph",
		Short: "Analyze social network graphs",
		Long: `sociograph loads a social network (CSV or JSON) and runs graph
algorithms over it: traversals, shortest paths, connected components,
degree centrality, Welsh-Powell coloring and the similarity
backbone. It can also generate
synthetic networks for experiments.

All commands print JSON to stdout; logs go to stderr.

Configuration is read from --config or $SOCIOGRAPH_CONFIG (YAML), and
SOCIOGRAPH_* variables may also come from a .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().StringVarP(&a.input, "input", "i", "", "graph file (.csv or .json); overrides config input")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging at debug level")

	root.AddCommand(
		newStatsCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newDijkstraCmd(a),
		newAStarCmd(a),
		newComponentsCmd(a),
		newCentralityCmd(a),
		newColorCmd(a),
		newBackboneCmd(a),
		newExportCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Resolve(a.configPath))
	if err != nil {
		return err
	}
	if a.input != "" {
		cfg.Input = a.input
	}
	if a.verbose {
		cfg.Log.Development = true
		cfg.Log.Level = "debug"
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))

	return nil
}

// loadGraph reads the configured input file.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Input == "" {
		return nil, fmt.Errorf("%w: no input file (use --input or set input in config)", config.ErrConfig)
	}
	opts, err := a.cfg.LoaderOptions(a.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrConfig, err)
	}

	var g *core.Graph
	if a.cfg.Format != "" {
		g, err = loader.LoadFileAs(a.cfg.Input, a.cfg.Format, opts...)
	} else {
		g, err = loader.LoadFile(a.cfg.Input, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errData, err)
	}

	return g, nil
}
