// SPDX-License-Identifier: MIT

package wiring

import (
	"context"
	"fmt"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	g     *Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort orders the vertices so that for every edge u→v, u comes
// before v: a vertex precedes everything it reads. A back edge (any cycle,
// including a self-loop) yields ErrCycleDetected naming the vertex where it
// was met.
func (g *Graph) TopologicalSort(options ...TopoOption) ([]string, error) {
	// 1. options
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	// 2. state
	verts := g.Vertices()
	s := &topoSorter{
		g:     g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}

	// 3. forest DFS
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	switch s.state[id] {
	case Gray:
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	s.state[id] = Gray

	for _, nbr := range sortedKeys(s.g.adj[id]) {
		if err := s.visit(nbr); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
