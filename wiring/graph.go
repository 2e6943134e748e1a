// SPDX-License-Identifier: MIT

package wiring

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyVertexID indicates that a vertex ID was empty.
	ErrEmptyVertexID = errors.New("wiring: vertex ID is empty")

	// ErrVertexNotFound indicates a query on a vertex that is not in the graph.
	ErrVertexNotFound = errors.New("wiring: vertex not found")

	// ErrCycleDetected indicates a back edge met by TopologicalSort.
	ErrCycleDetected = errors.New("wiring: cycle detected")
)

// Visitation states of the three-colour DFS.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

// Graph is a directed dependency graph. The zero value is not usable; call New.
type Graph struct {
	adj   map[string]map[string]struct{} // from → set of to
	edges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// AddVertex inserts id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}

	return nil
}

// AddEdge inserts from→to, creating missing vertices. A repeated edge is
// ignored; from == to records a self-loop.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	if _, dup := g.adj[from][to]; !dup {
		g.adj[from][to] = struct{}{}
		g.edges++
	}

	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns every vertex id, sorted.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
