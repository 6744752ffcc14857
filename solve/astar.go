package solve

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/topology"
)

// AStar returns a shortest path from start to end, or ErrNoPath.
// Stale heap entries are skipped on pop (lazy decrease-key).
func AStar(g *grid.Grid, topo topology.Topology, start, end grid.Point, opts ...Option) (grid.Path, error) {
	s, err := newSearch(g, topo, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return grid.Path{start}, nil
	}

	n := g.Len()
	cost := make([]int, n)
	for i := range cost {
		cost[i] = math.MaxInt
	}
	closed := make([]bool, n)

	var seq int
	pq := make(openPQ, 0, n)
	push := func(p grid.Point, gc int) {
		heap.Push(&pq, &openItem{p: p, g: gc, f: gc + topo.Heuristic(g, p, end), seq: seq})
		seq++
	}
	cost[s.index(start)] = 0
	push(start, 0)

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*openItem)
		u := s.index(it.p)
		if closed[u] || it.g > cost[u] {
			continue
		}
		closed[u] = true
		if err = s.expanded(it.p); err != nil {
			return nil, err
		}
		if it.p == end {
			return s.path(end), nil
		}
		for _, nb := range s.edges(it.p) {
			v := s.index(nb)
			if closed[v] {
				continue
			}
			if nc := it.g + 1; nc < cost[v] {
				cost[v] = nc
				s.prev[v] = u
				push(nb, nc)
			}
		}
	}
	return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
}

// openItem is a heap entry; seq records push order for tie-breaking.
type openItem struct {
	p    grid.Point
	g, f int
	seq  int
}

// openPQ is a min-heap on (f, seq).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}
