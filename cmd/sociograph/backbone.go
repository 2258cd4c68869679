package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/loader"
	"github.com/katalvlaran/sociograph/mst"
)

// BackboneEdge is one edge of the spanning forest.
type BackboneEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// BackboneResponse is the output of the backbone command.
type BackboneResponse struct {
	Method string         `json:"method"`
	Trees  int            `json:"trees"`
	Total  float64        `json:"total"`
	Edges  []BackboneEdge `json:"edges"`
}

func newBackboneCmd(a *app) *cobra.Command {
	var (
		method   string
		root     int
		graphOut string
	)
	cmd := &cobra.Command{
		Use:   "backbone",
		Short: "Compute the similarity backbone of the network",
		Long: `Compute the maximum-weight spanning forest: per component, the set of
edges that keeps it connected through the heaviest weights. Weights are
similarities, so the backbone keeps the most similar pairs.

Examples:
  sociograph backbone -i network.csv
  sociograph backbone -i network.csv --method prim --root 3
  sociograph backbone -i network.csv --graph-out backbone.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			opts := []mst.Option{mst.WithMethod(method), mst.WithForest()}
			if cmd.Flags().Changed("root") {
				opts = append(opts, mst.WithRoot(root))
			}
			res, err := mst.Compute(g, opts...)
			if err != nil {
				return err
			}
			if graphOut != "" {
				if err = writeBackbone(g, graphOut, opts); err != nil {
					return err
				}
				a.logger.Info("backbone exported", zap.String("path", graphOut), zap.Int("edges", len(res.Edges)))
			}

			resp := BackboneResponse{
				Method: method,
				Trees:  res.Trees,
				Total:  res.Total,
				Edges:  make([]BackboneEdge, 0, len(res.Edges)),
			}
			for _, e := range res.Edges {
				resp.Edges = append(resp.Edges, BackboneEdge{Source: e.U, Target: e.V, Weight: e.Weight})
			}

			return outputJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&method, "method", mst.MethodKruskal, "kruskal or prim")
	cmd.Flags().IntVar(&root, "root", 0, "starting node for prim (default first node)")
	cmd.Flags().StringVar(&graphOut, "graph-out", "", "also write the backbone as a loadable JSON graph")

	return cmd
}

// writeBackbone saves the backbone of g as a JSON graph at path.
func writeBackbone(g *core.Graph, path string, opts []mst.Option) error {
	bb, err := mst.Backbone(g, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err = loader.WriteJSON(f, bb); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
