package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/components"
	"github.com/katalvlaran/sociograph/core"
)

// StatsResponse is the output of the stats command.
type StatsResponse struct {
	core.GraphStats
	Components int `json:"components"`
	Largest    int `json:"largest_component"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and degree statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), StatsResponse{
				GraphStats: g.Stats(),
				Components: components.Count(g),
				Largest:    len(components.Largest(g)),
			})
		},
	}
}
