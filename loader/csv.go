package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/core"
)

// pendingRow keeps a node's raw neighbor list until every node exists.
type pendingRow struct {
	id        int
	line      int
	neighbors []int
}

// ReadCSV loads a graph from CSV with a header row and one node per row.
//
// Pass 1 creates every node; pass 2 resolves the neighbor lists. An edge u--v
// is added from u's row only when u < v, with weight WeightFunc(u, v); a
// neighbor listed only by the larger endpoint is ignored. Unparseable optional
// numeric cells are skipped and logged at debug level.
func ReadCSV(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)
	if err := o.Columns.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadColumns)
		}
		return nil, fmt.Errorf("loader: read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range []string{o.Columns.NodeID, o.Columns.Neighbors} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: header lacks %q", ErrBadColumns, col)
		}
	}

	g := core.NewGraph()
	var pending []pendingRow

	// pass 1: nodes
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		row, err := o.addCSVNode(g, rec, idx, line)
		if err != nil {
			return nil, err
		}
		pending = append(pending, row)
	}

	// pass 2: edges
	for _, row := range pending {
		for _, v := range row.neighbors {
			if !g.HasNode(v) {
				return nil, fmt.Errorf("%w: line %d: node %d lists %d", ErrUnknownNeighbor, row.line, row.id, v)
			}
			if row.id >= v {
				continue
			}
			if err = o.addWeightedEdge(g, row.id, v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrBadRow, row.line, err)
			}
		}
	}

	return o.finish(g, FormatCSV)
}

// addCSVNode parses one record and inserts its node.
func (o *Options) addCSVNode(g *core.Graph, rec []string, idx map[string]int, line int) (pendingRow, error) {
	cell := func(col string) (string, bool) {
		if col == "" {
			return "", false
		}
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return "", false
		}
		v := strings.TrimSpace(rec[i])

		return v, v != ""
	}

	raw, _ := cell(o.Columns.NodeID)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return pendingRow{}, fmt.Errorf("%w: line %d: node id %q", ErrBadRow, line, raw)
	}

	nodeOpts := make([]core.NodeOption, 0, 4)
	if name, ok := cell(o.Columns.Name); ok {
		nodeOpts = append(nodeOpts, core.WithName(name))
	}
	numeric := []struct {
		col string
		set func(float64) core.NodeOption
	}{
		{o.Columns.Activity, core.WithActivity},
		{o.Columns.Interaction, core.WithInteraction},
		{o.Columns.ConnectionCount, core.WithConnectionCount},
	}
	for _, f := range numeric {
		s, ok := cell(f.col)
		if !ok {
			continue
		}
		v, perr := parseFinite(s)
		if perr != nil {
			o.Logger.Debug("skipping unparseable cell",
				zap.Int("line", line), zap.String("column", f.col), zap.String("value", s))
			continue
		}
		nodeOpts = append(nodeOpts, f.set(v))
	}
	for attr, col := range o.Columns.Extras {
		s, ok := cell(col)
		if !ok {
			continue
		}
		if v, perr := parseFinite(s); perr == nil {
			nodeOpts = append(nodeOpts, core.WithExtra(attr, v))
		} else {
			nodeOpts = append(nodeOpts, core.WithLabel(attr, s))
		}
	}

	if _, err = g.AddNode(id, nodeOpts...); err != nil {
		return pendingRow{}, fmt.Errorf("%w: line %d: %w", ErrBadRow, line, err)
	}

	row := pendingRow{id: id, line: line}
	list, _ := cell(o.Columns.Neighbors)
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		nb, perr := strconv.Atoi(tok)
		if perr != nil {
			return pendingRow{}, fmt.Errorf("%w: line %d: neighbor %q", ErrBadRow, line, tok)
		}
		row.neighbors = append(row.neighbors, nb)
	}

	return row, nil
}

// addWeightedEdge connects u and v using the configured weight strategy.
// parseFinite is strconv.ParseFloat that also rejects NaN and ±Inf, which
// could never be weighed or exported.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}

	return v, nil
}

func (o *Options) addWeightedEdge(g *core.Graph, u, v int) error {
	nu, err := g.Node(u)
	if err != nil {
		return err
	}
	nv, err := g.Node(v)
	if err != nil {
		return err
	}
	_, err = g.AddEdge(u, v, o.WeightFunc(nu, nv))

	return err
}

// finish validates the graph if requested and logs the load summary.
func (o *Options) finish(g *core.Graph, format string) (*core.Graph, error) {
	if o.Validate {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
	}
	o.Logger.Info("graph loaded",
		zap.String("format", format),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}
