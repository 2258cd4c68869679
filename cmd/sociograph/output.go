package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID converts a positional argument into a node ID.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", arg)
	}
	return id, nil
}

// finite maps +Inf to nil so unreachable distances encode as JSON null.
func finite(d float64) *float64 {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return nil
	}
	return &d
}

// PathResponse is the output of dijkstra and astar with a target.
type PathResponse struct {
	Start     int      `json:"start"`
	Target    int      `json:"target"`
	Path      []int    `json:"path"`
	Cost      *float64 `json:"cost"`
	Reachable bool     `json:"reachable"`
}

// DistancesResponse is the output of dijkstra without a target.
type DistancesResponse struct {
	Start     int              `json:"start"`
	Distances map[int]*float64 `json:"distances"`
}

// TraversalResponse is the output of bfs and dfs.
type TraversalResponse struct {
	Start int         `json:"start"`
	Order []int       `json:"order"`
	Depth map[int]int `json:"depth,omitempty"`
}
