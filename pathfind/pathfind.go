// Package pathfind runs A* over the sparse visibility graph induced by an
// object index, rather than expanding every free cell of the lattice.
package pathfind

import (
	"container/heap"

	"github.com/gridpath-dev/gridpath/geom"
	"github.com/gridpath-dev/gridpath/objects"
	"github.com/gridpath-dev/gridpath/visibility"
)

// edge is a candidate successor in the visibility graph: a node reachable
// in a straight line from the expanding node, with its traversal cost.
type edge struct {
	pos  geom.Pos
	cost int64
}

// FindPath searches for a path from start to end over the visibility graph
// induced by idx, snapping either endpoint to its object's nearest corner
// node first if it falls inside a blocked object. It reports false if no
// path exists.
//
// A search-node cache keyed by (from, objectID) could short-circuit repeated
// visibleObjectNodes expansions for a from node queried against the same
// object more than once in a single search; this implementation recomputes
// the expansion every time, trading that speedup for simplicity and for a
// precompute-only invalidation story (no cache to invalidate on Precompute).
func FindPath(blocked visibility.Blocked, idx *objects.Index, start, end geom.Pos) ([]geom.Pos, bool) {
	start = objects.Snap(idx, start)
	end = objects.Snap(idx, end)

	path, ok := search(blocked, idx, start, end)
	if !ok {
		return nil, false
	}
	return prune(blocked, path), true
}

// successors returns the edges leaving from toward end: a direct edge to end
// if it is visible, otherwise the transitive visible-corner expansion of the
// object first blocking that view.
func successors(blocked visibility.Blocked, idx *objects.Index, from, end geom.Pos) []edge {
	outcome := visibility.Test(blocked, from, end)
	if outcome.Clear {
		return []edge{{pos: end, cost: geom.Distance(from, end)}}
	}
	return visibleObjectNodes(blocked, idx, from, outcome.Blocker)
}

// visibleObjectNodes returns every corner node visible from "from", starting
// the search at the corner nodes of the object occupying cell and expanding
// transitively through any further object whose corners block a candidate
// node, until every reachable corner has been classified as visible or
// re-blocked by a not-yet-visited object.
func visibleObjectNodes(blocked visibility.Blocked, idx *objects.Index, from, cell geom.Pos) []edge {
	startObj, _ := idx.ObjectID(cell)
	visitedObjects := map[objects.ID]struct{}{}

	seed, _ := idx.NodesAt(cell)
	queue := append([]geom.Pos(nil), seed...)

	var out []edge
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		outcome := visibility.Test(blocked, from, n)
		if outcome.Clear {
			out = append(out, edge{pos: n, cost: geom.Distance(from, n)})
			continue
		}

		c := outcome.Blocker
		cObj, _ := idx.ObjectID(c)
		if _, seen := visitedObjects[cObj]; seen || cObj == startObj {
			continue
		}
		visitedObjects[cObj] = struct{}{}
		more, _ := idx.NodesAt(c)
		queue = append(queue, more...)
	}
	return out
}

// pathItem is a node in the A* open set.
type pathItem struct {
	pos geom.Pos
	f   int64
}

// nodePQ is a min-heap of *pathItem ordered by ascending f-score, using the
// lazy-decrease-key pattern: a cheaper route to an already-queued node is
// pushed as a new entry rather than updating the old one in place, and stale
// entries are discarded when popped.
type nodePQ []*pathItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// search runs A* from start to end over the visibility graph and returns the
// resulting node sequence, unpruned.
func search(blocked visibility.Blocked, idx *objects.Index, start, end geom.Pos) ([]geom.Pos, bool) {
	if start == end {
		return []geom.Pos{start}, true
	}

	gScore := map[geom.Pos]int64{start: 0}
	parent := map[geom.Pos]geom.Pos{}
	closed := map[geom.Pos]bool{}

	open := make(nodePQ, 0, 64)
	heap.Push(&open, &pathItem{pos: start, f: geom.Distance(start, end)})

	for open.Len() > 0 {
		item := heap.Pop(&open).(*pathItem)
		if closed[item.pos] {
			continue
		}
		if item.pos == end {
			return reconstruct(parent, start, end), true
		}
		closed[item.pos] = true

		for _, s := range successors(blocked, idx, item.pos, end) {
			if closed[s.pos] {
				continue
			}
			newG := gScore[item.pos] + s.cost
			if old, ok := gScore[s.pos]; ok && newG >= old {
				continue
			}
			gScore[s.pos] = newG
			parent[s.pos] = item.pos
			heap.Push(&open, &pathItem{pos: s.pos, f: newG + geom.Distance(s.pos, end)})
		}
	}
	return nil, false
}

func reconstruct(parent map[geom.Pos]geom.Pos, start, end geom.Pos) []geom.Pos {
	path := []geom.Pos{end}
	for cur := end; cur != start; {
		p := parent[cur]
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// prune greedily removes intermediate nodes that the search only visited
// because it expanded corner-by-corner: whenever path[n] can see path[n+2]
// directly, path[n+1] is redundant.
func prune(blocked visibility.Blocked, path []geom.Pos) []geom.Pos {
	n := 0
	for n+2 < len(path) {
		if visibility.Test(blocked, path[n], path[n+2]).Clear {
			path = append(path[:n+1], path[n+2:]...)
		} else {
			n++
		}
	}
	return path
}
