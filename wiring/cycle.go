// SPDX-License-Identifier: MIT

package wiring

import (
	"fmt"
	"sort"
	"strings"
)

// PathTo returns a shortest-hop path [from … to] of at least one edge, or
// nil when to is unreachable. PathTo(x, x) is therefore the shortest cycle
// through x, and nil when x lies on none.
//
// Steps:
//  1. Seed a FIFO queue with the successors of from.
//  2. Record the parent of every vertex on first discovery.
//  3. When to is dequeued, walk the parent links back to from.
func (g *Graph) PathTo(from, to string) ([]string, error) {
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	// 1) queue of discovered vertices; from itself is only a source
	parent := make(map[string]string, len(g.adj))
	queue := make([]string, 0, len(g.adj))
	for _, s := range sortedKeys(g.adj[from]) {
		if _, seen := parent[s]; !seen {
			parent[s] = from
			queue = append(queue, s)
		}
	}

	// 2) breadth-first expansion
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == to {
			// 3) rebuild
			path := []string{to}
			for v := parent[to]; ; v = parent[v] {
				path = append(path, v)
				if v == from {
					break
				}
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path, nil
		}
		for _, s := range sortedKeys(g.adj[cur]) {
			if _, seen := parent[s]; !seen {
				parent[s] = cur
				queue = append(queue, s)
			}
		}
	}

	return nil, nil
}

// Reaches reports whether a path of at least one edge leads from → to.
func (g *Graph) Reaches(from, to string) (bool, error) {
	path, err := g.PathTo(from, to)
	if err != nil {
		return false, err
	}

	return path != nil, nil
}

// FindCycle returns the shortest cycle through start as a closed sequence
// [start … start], or nil when start lies on no cycle.
func (g *Graph) FindCycle(start string) ([]string, error) {
	return g.PathTo(start, start)
}

// DetectCycles runs a three-colour DFS over the whole graph and returns one
// closed cycle per back edge, each rotated to lead with its smallest id,
// de-duplicated and sorted.
//
// Steps:
//  1. Visit vertices in sorted order; every White vertex starts a DFS tree.
//  2. A Gray successor closes a cycle: the path segment from it to the current
//     vertex, plus the successor again.
//  3. Canonicalize by minimal rotation and keep unseen signatures.
func (g *Graph) DetectCycles() [][]string {
	state := make(map[string]int, len(g.adj))
	path := make([]string, 0, len(g.adj))
	seen := make(map[string]struct{})
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		state[id] = Gray
		path = append(path, id)
		for _, nbr := range sortedKeys(g.adj[id]) {
			switch state[nbr] {
			case White:
				visit(nbr)
			case Gray:
				idx := indexOf(path, nbr)
				seq := append(append([]string(nil), path[idx:]...), nbr)
				sig, canon := canonical(seq)
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, canon)
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black
	}

	// 1) forest traversal
	for _, v := range g.Vertices() {
		if state[v] == White {
			visit(v)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return cycles
}

// canonical rotates the closed cycle [v0 … v0] so the rotation that is
// lexicographically smallest leads. Direction is kept: a→b→a and b→a→b are
// the same cycle, but a→b→c→a and a→c→b→a are not.
func canonical(cycle []string) (string, []string) {
	base := cycle[:len(cycle)-1]
	rot := minimalRotation(base)
	closed := append(append([]string(nil), rot...), rot[0])

	return strings.Join(closed, ","), closed
}

// minimalRotation is Booth's algorithm: the lexicographically least rotation
// of s in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	d := make([]string, 0, 2*n)
	d = append(append(d, s...), s...)
	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && d[j] != d[k+i+1] {
			if d[j] < d[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if d[j] != d[k+i+1] {
			if d[j] < d[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	out := make([]string, n)
	copy(out, d[k:k+n])

	return out
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
