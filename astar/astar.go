// Package astar implements A* shortest-path search on 2D occupancy grids.
//
// The search maintains a min-heap frontier keyed by f = g + h, where g is
// the best known step count from the start and h is the Manhattan distance
// to the goal. Equal f values pop in insertion order via a per-call
// sequence number, which makes the pop order, and hence the returned
// path, fully deterministic.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: relaxations push duplicate
//     heap entries, and stale entries are discarded when popped if their
//     cell is already in the visited set.
//   - The sequence counter lives in the per-call searcher state, so
//     concurrent calls never couple through shared mutable state.
//   - A blocked or out-of-bounds endpoint short-circuits to ErrNoPath
//     before any allocation beyond the validation itself.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridastar/grid"
)

// FindPath computes a shortest 4-directional path on g from start to goal.
//
// Returns:
//
//   - path: coordinates from start to goal inclusive, each consecutive
//     pair one axis-aligned step apart. When start == goal the path is
//     the single element [start].
//   - err:  ErrNilGrid for a nil grid; ErrNoPath when goal is unreachable,
//     including the case of a blocked or out-of-bounds start or goal.
//
// The returned path is minimal in step count and identical across
// repeated calls with identical inputs.
//
// Complexity:
//
//   - Time:  O(N log N), N = g.Rows()×g.Cols()
//   - Space: O(N)
func FindPath(g *grid.Grid, start, goal grid.Coordinate) (grid.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Endpoint preconditions fold into the unreachable outcome: the
	// frontier could never admit a blocked cell, so failing fast here is
	// observably identical and skips the whole search.
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil, ErrNoPath
	}

	n := g.Rows() * g.Cols()
	s := &searcher{
		grid:     g,
		goal:     goal,
		gScore:   make(map[grid.Coordinate]int, n),
		cameFrom: make(map[grid.Coordinate]grid.Coordinate, n),
		visited:  make(map[grid.Coordinate]struct{}, n),
		pq:       make(frontier, 0, n),
	}
	s.init(start)

	return s.process()
}

// searcher holds the mutable state for a single FindPath execution.
// Every field is created at call entry and discarded at call exit;
// nothing persists across invocations.
type searcher struct {
	grid     *grid.Grid                           // read-only input snapshot
	goal     grid.Coordinate                      // search target
	gScore   map[grid.Coordinate]int              // best known step count from start
	cameFrom map[grid.Coordinate]grid.Coordinate  // predecessor on the cheapest discovered route
	visited  map[grid.Coordinate]struct{}         // cells whose gScore is finalized
	pq       frontier                             // min-heap of discovered, not yet finalized cells
	seq      int                                  // per-call push counter for deterministic tie-breaking
}

// init seeds the search state: gScore[start] = 0 and one frontier entry
// for start with f = h(start).
func (s *searcher) init(start grid.Coordinate) {
	s.gScore[start] = 0
	heap.Init(&s.pq)
	s.push(start, start.ManhattanTo(s.goal))
}

// push adds cell c to the frontier with priority f, stamping it with the
// next sequence number so that equal-f entries pop in insertion order.
func (s *searcher) push(c grid.Coordinate, f int) {
	heap.Push(&s.pq, &frontierItem{coord: c, f: f, seq: s.seq})
	s.seq++
}

// process is the main loop: pop the minimum-f entry, finish on goal,
// discard stale duplicates, otherwise finalize the cell and expand it.
// Returns ErrNoPath once the frontier is exhausted.
func (s *searcher) process() (grid.Path, error) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*frontierItem)
		curr := item.coord

		// Goal reached: its gScore is optimal because the heuristic is
		// consistent, so reconstruct immediately.
		if curr == s.goal {
			return s.reconstruct(curr), nil
		}

		// Stale duplicate from an earlier, worse push.
		if _, done := s.visited[curr]; done {
			continue
		}
		s.visited[curr] = struct{}{}

		s.expand(curr)
	}

	return nil, ErrNoPath
}

// expand relaxes the in-bounds walkable 4-neighbors of curr: any neighbor
// reached in fewer steps than previously known gets its gScore and
// predecessor updated and a fresh frontier entry with f = g + h.
func (s *searcher) expand(curr grid.Coordinate) {
	tentative := s.gScore[curr] + 1
	for _, nb := range s.grid.Neighbors(curr) {
		if known, ok := s.gScore[nb]; ok && tentative >= known {
			continue
		}
		s.gScore[nb] = tentative
		s.cameFrom[nb] = curr
		s.push(nb, tentative+nb.ManhattanTo(s.goal))
	}
}

// reconstruct follows predecessor links from curr back to the start and
// reverses the result so the path reads start → goal.
// Complexity: O(path length).
func (s *searcher) reconstruct(curr grid.Coordinate) grid.Path {
	path := grid.Path{curr}
	for {
		prev, ok := s.cameFrom[curr]
		if !ok {
			break
		}
		curr = prev
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is one frontier entry: a cell, its estimated total cost
// f = g + h, and the sequence number assigned when it was pushed.
type frontierItem struct {
	coord grid.Coordinate
	f     int
	seq   int
}

// frontier is a min-heap of *frontierItem ordered by (f, seq) ascending.
// Under the lazy-decrease-key strategy a cell may appear several times;
// outdated entries are ignored when popped (checked against the visited
// set by the searcher).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by smaller f first; equal f falls back to the smaller
// sequence number, i.e. the earlier push.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
