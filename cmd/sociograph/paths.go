package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/astar"
	"github.com/katalvlaran/sociograph/dijkstra"
)

func newDijkstraCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dijkstra <start> [target]",
		Short: "Shortest distances from a node, or the path to a target",
		Long: `Without [target], prints the distance from <start> to every node
(null when unreachable). With [target], prints the shortest path and its cost.

Examples:
  sociograph dijkstra 1
  sociograph dijkstra 1 10`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			target := start
			if len(args) == 2 {
				if target, err = parseID(args[1]); err != nil {
					return err
				}
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			if len(args) == 2 {
				path, cost, err := dijkstra.ShortestPath(g, start, target)
				if err != nil {
					return err
				}
				return outputJSON(cmd.OutOrStdout(), PathResponse{
					Start: start, Target: target, Path: path, Cost: finite(cost), Reachable: len(path) > 0,
				})
			}

			dist, _, err := dijkstra.Dijkstra(g, start)
			if err != nil {
				return err
			}
			out := DistancesResponse{Start: start, Distances: make(map[int]*float64, len(dist))}
			for id, d := range dist {
				out.Distances[id] = finite(d)
			}
			return outputJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newAStarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "astar <start> <target>",
		Short: "A* shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			target, err := parseID(args[1])
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := astar.AStar(g, start, target)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), PathResponse{
				Start: start, Target: target, Path: res.Path, Cost: finite(res.Cost()), Reachable: len(res.Path) > 0,
			})
		},
	}
}
