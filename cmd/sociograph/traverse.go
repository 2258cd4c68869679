package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/dfs"
)

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs <start>",
		Short: "Breadth-first visit order from a node",
		Long: `Breadth-first traversal from <start>. Neighbors are visited in
ascending id order; depth is the hop count from <start>.

Examples:
  sociograph bfs 1 -i network.csv
  sociograph bfs 1 --max-depth 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			var opts []bfs.Option
			if cmd.Flags().Changed("max-depth") {
				opts = append(opts, bfs.WithMaxDepth(maxDepth))
			}
			res, err := bfs.BFS(g, start, opts...)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), TraversalResponse{Start: start, Order: res.Order, Depth: res.Depth})
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "do not expand nodes deeper than this")

	return cmd
}

func newDFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dfs <start>",
		Short: "Depth-first visit order from a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			order, err := dfs.Order(g, start)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), TraversalResponse{Start: start, Order: order})
		},
	}
}
