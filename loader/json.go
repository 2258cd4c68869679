package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/core"
)

// document is the on-disk JSON shape shared by ReadJSON and WriteJSON.
type document struct {
	Nodes []map[string]any `json:"nodes"`
	Edges []edgeRecord     `json:"edges"`
}

type edgeRecord struct {
	Source *int     `json:"source"`
	Target *int     `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}

// Known node keys; everything else is an extra attribute.
const (
	keyID     = "id"
	keyNodeID = "node_id"
	keyName   = "name"
)

// ReadJSON loads a graph from
//
//	{"nodes": [{"id": 1, "name": "...", "activity": 0.8, ...}],
//	 "edges": [{"source": 1, "target": 2, "weight": 0.5}]}
//
// "node_id" is accepted in place of "id". Unknown numeric node keys become
// Extras and string keys become Labels. Edges without a weight get
// WeightFunc(source, target).
func ReadJSON(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decode json: %w", err)
	}

	g := core.NewGraph()
	for i, rec := range doc.Nodes {
		if err := o.addJSONNode(g, i, rec); err != nil {
			return nil, err
		}
	}

	for i, e := range doc.Edges {
		if e.Source == nil || e.Target == nil {
			return nil, fmt.Errorf("%w: edges[%d] needs source and target", ErrBadEdge, i)
		}
		u, v := *e.Source, *e.Target
		for _, id := range []int{u, v} {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: edges[%d] references %d", ErrUnknownNeighbor, i, id)
			}
		}
		var err error
		if e.Weight != nil {
			_, err = g.AddEdge(u, v, *e.Weight)
		} else {
			err = o.addWeightedEdge(g, u, v)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadEdge, i, err)
		}
	}

	return o.finish(g, FormatJSON)
}

// addJSONNode converts one node object and inserts it.
func (o *Options) addJSONNode(g *core.Graph, i int, rec map[string]any) error {
	rawID, ok := rec[keyID]
	if !ok {
		rawID, ok = rec[keyNodeID]
	}
	if !ok {
		return fmt.Errorf("%w: nodes[%d] has no id", ErrBadRow, i)
	}
	num, ok := rawID.(json.Number)
	if !ok {
		return fmt.Errorf("%w: nodes[%d] id %v is not a number", ErrBadRow, i, rawID)
	}
	id64, err := num.Int64()
	if err != nil {
		return fmt.Errorf("%w: nodes[%d] id %s is not an integer", ErrBadRow, i, num)
	}

	var nodeOpts []core.NodeOption
	for key, val := range rec {
		switch key {
		case keyID, keyNodeID:
			continue
		case keyName:
			if s, isStr := val.(string); isStr {
				nodeOpts = append(nodeOpts, core.WithName(s))
			}
			continue
		}
		switch tv := val.(type) {
		case json.Number:
			f, perr := tv.Float64()
			if perr != nil {
				o.Logger.Debug("skipping unparseable attribute",
					zap.Int("node", int(id64)), zap.String("key", key), zap.String("value", tv.String()))
				continue
			}
			nodeOpts = append(nodeOpts, numericOption(key, f))
		case string:
			nodeOpts = append(nodeOpts, core.WithLabel(key, tv))
		default:
			o.Logger.Debug("skipping non-scalar attribute", zap.Int("node", int(id64)), zap.String("key", key))
		}
	}

	if _, err = g.AddNode(int(id64), nodeOpts...); err != nil {
		return fmt.Errorf("%w: nodes[%d]: %w", ErrBadRow, i, err)
	}

	return nil
}

// numericOption routes a numeric attribute to its canonical field or Extras.
func numericOption(key string, v float64) core.NodeOption {
	switch key {
	case core.AttrActivity:
		return core.WithActivity(v)
	case core.AttrInteraction:
		return core.WithInteraction(v)
	case core.AttrConnectionCount:
		return core.WithConnectionCount(v)
	}

	return core.WithExtra(key, v)
}

// WriteJSON encodes g in the ReadJSON format with explicit weights, so the
// output loads back into an equal graph. Nodes keep insertion order; edges are
// sorted by key.
func WriteJSON(w io.Writer, g *core.Graph) error {
	doc := document{
		Nodes: make([]map[string]any, 0, g.NodeCount()),
		Edges: make([]edgeRecord, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		rec := make(map[string]any, 5+len(n.Extras)+len(n.Labels))
		for k, v := range n.Labels {
			rec[k] = v
		}
		for k, v := range n.Extras {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			rec[k] = v
		}
		rec[keyID] = n.ID
		rec[keyName] = n.Name
		for k, v := range map[string]float64{
			core.AttrActivity:        n.Activity,
			core.AttrInteraction:     n.Interaction,
			core.AttrConnectionCount: n.ConnectionCount,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			rec[k] = v
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, e := range g.Edges() {
		u, v, wt := e.U, e.V, e.Weight
		doc.Edges = append(doc.Edges, edgeRecord{Source: &u, Target: &v, Weight: &wt})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encode json: %w", err)
	}

	return nil
}
