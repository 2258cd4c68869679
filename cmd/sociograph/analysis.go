package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/centrality"
	"github.com/katalvlaran/sociograph/coloring"
	"github.com/katalvlaran/sociograph/components"
)

// ComponentsResponse is the output of the components command.
type ComponentsResponse struct {
	Count      int     `json:"count"`
	Components [][]int `json:"components"`
}

// CentralityEntry is one ranked node.
type CentralityEntry struct {
	centrality.Score
	Normalized float64 `json:"normalized"`
}

// ColorResponse is the output of the color command.
type ColorResponse struct {
	Count   int         `json:"count"`
	Colors  map[int]int `json:"colors"`
	Classes [][]int     `json:"classes"`
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			comps := components.Connected(g)
			return outputJSON(cmd.OutOrStdout(), ComponentsResponse{Count: len(comps), Components: comps})
		},
	}
}

func newCentralityCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Rank the most connected nodes by degree",
		Long: `Rank nodes by degree (descending, ties by ascending id).

The list length comes from --top, else centrality.top_n in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			n := a.cfg.Centrality.TopN
			if cmd.Flags().Changed("top") {
				n = top
			}
			norm := centrality.Normalized(g)
			scores := centrality.Degree(g, n)
			out := make([]CentralityEntry, 0, len(scores))
			for _, s := range scores {
				out = append(out, CentralityEntry{Score: s, Normalized: norm[s.ID]})
			}
			return outputJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of nodes to list")

	return cmd
}

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Color the graph with Welsh-Powell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			colors := coloring.WelshPowell(g)
			if err = coloring.Validate(g, colors); err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), ColorResponse{
				Count:   coloring.ColorCount(colors),
				Colors:  colors,
				Classes: coloring.Classes(colors),
			})
		},
	}
}
