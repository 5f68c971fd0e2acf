// Package pathfind provides A* search over grid graphs.
package pathfind

import (
	"slices"

	"github.com/zyedidia/generic/heap"
)

// Exit is an edge out of a node.
type Exit struct {
	To   int     // Destination node index
	Cost float64 // Edge weight
}

// Graph is anything A* can search. Distance must never overestimate the true
// path cost between two nodes.
type Graph interface {
	Exits(idx int) []Exit
	Distance(from, to int) float64
}

// Path is the result of a search.
type Path struct {
	Success bool
	Steps   []int // Start first, goal last; empty on failure
}

// Next returns the first move along the path, if there is one.
func (p Path) Next() (int, bool) {
	if !p.Success || len(p.Steps) < 2 {
		return 0, false
	}
	return p.Steps[1], true
}

// Cost sums the graph distance along the path.
func (p Path) Cost(g Graph) float64 {
	total := 0.0
	for i := 1; i < len(p.Steps); i++ {
		total += g.Distance(p.Steps[i-1], p.Steps[i])
	}
	return total
}

type openNode struct {
	idx int
	f   float64 // g + heuristic
	g   float64
}

// AStar finds a shortest path from start to goal. The search fails when the
// goal is unreachable or start equals goal.
func AStar(start, goal int, graph Graph) Path {
	if start == goal {
		return Path{}
	}

	open := heap.New[openNode](func(a, b openNode) bool {
		if a.f == b.f {
			return a.g > b.g
		}
		return a.f < b.f
	})
	open.Push(openNode{idx: start, f: graph.Distance(start, goal)})

	cost := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}

	for open.Size() > 0 {
		node, _ := open.Pop()
		if closed[node.idx] {
			continue
		}
		if node.idx == goal {
			return Path{Success: true, Steps: walkBack(parent, start, goal)}
		}
		closed[node.idx] = true

		for _, exit := range graph.Exits(node.idx) {
			if closed[exit.To] {
				continue
			}
			g := node.g + exit.Cost
			if known, ok := cost[exit.To]; ok && known <= g {
				continue
			}
			cost[exit.To] = g
			parent[exit.To] = node.idx
			open.Push(openNode{idx: exit.To, f: g + graph.Distance(exit.To, goal), g: g})
		}
	}

	return Path{}
}

func walkBack(parent map[int]int, start, goal int) []int {
	steps := []int{goal}
	for at := goal; at != start; {
		at = parent[at]
		steps = append(steps, at)
	}
	slices.Reverse(steps)
	return steps
}
