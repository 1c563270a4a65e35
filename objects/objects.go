// Package objects clusters blocked cells into connected objects and derives
// the convex corner nodes a visibility search routes through.
package objects

import (
	"sort"

	"github.com/gridpath-dev/gridpath/geom"
)

// ID identifies one connected cluster of blocked cells.
type ID int

// Index is the bidirectional map a precomputed obstacle field produces:
// every blocked cell resolves to the object it belongs to, and every object
// resolves to its sorted list of corner nodes. A nil *Index behaves as the
// index of an empty map — every lookup reports "not found" rather than
// panicking, so callers that query before the first Precompute degrade
// gracefully instead of crashing.
type Index struct {
	cellObject map[geom.Pos]ID
	nodes      map[ID][]geom.Pos
	nodeSet    map[geom.Pos]struct{}
}

// Build clusters blocked into 8-connected objects and derives each object's
// corner nodes. Object IDs and each object's node order are assigned
// deterministically (by ascending cell/position), so two calls to Build over
// the same blocked set always produce byte-identical Indexes.
func Build(blocked map[geom.Pos]struct{}) *Index {
	ix := &Index{
		cellObject: make(map[geom.Pos]ID, len(blocked)),
		nodes:      make(map[ID][]geom.Pos),
		nodeSet:    make(map[geom.Pos]struct{}),
	}

	seeds := make([]geom.Pos, 0, len(blocked))
	for p := range blocked {
		seeds = append(seeds, p)
	}
	sortPositions(seeds)

	visited := make(map[geom.Pos]struct{}, len(blocked))
	var next ID
	for _, seed := range seeds {
		if _, ok := visited[seed]; ok {
			continue
		}
		cells := floodFill(blocked, seed)
		id := next
		next++

		corners := make(map[geom.Pos]struct{})
		for c := range cells {
			deriveCorners(blocked, c, corners)
		}
		nodeList := make([]geom.Pos, 0, len(corners))
		for c := range corners {
			nodeList = append(nodeList, c)
			ix.nodeSet[c] = struct{}{}
		}
		sortPositions(nodeList)
		ix.nodes[id] = nodeList

		for c := range cells {
			ix.cellObject[c] = id
			visited[c] = struct{}{}
		}
	}
	return ix
}

// floodFill returns the 8-connected set of blocked cells reachable from
// start, inclusive.
func floodFill(blocked map[geom.Pos]struct{}, start geom.Pos) map[geom.Pos]struct{} {
	visited := map[geom.Pos]struct{}{}
	queue := []geom.Pos{start}
	queued := map[geom.Pos]struct{}{start: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visited[cur] = struct{}{}

		for _, d := range neighborOffsets {
			n := cur.Add(d)
			if _, blockedHere := blocked[n]; !blockedHere {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			if _, inQueue := queued[n]; inQueue {
				continue
			}
			queue = append(queue, n)
			queued[n] = struct{}{}
		}
	}
	return visited
}

var neighborOffsets = [8]geom.Pos{
	{X: -1, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: -1}, {X: 0, Z: 1},
	{X: -1, Z: -1}, {X: 1, Z: -1}, {X: -1, Z: 1}, {X: 1, Z: 1},
}

// deriveCorners adds cell's convex corner nodes to corners: a diagonal
// neighbor of cell is a node only if it is itself unblocked and neither of
// the two cardinal cells adjacent to it on that side are blocked, i.e. it is
// an outward-facing convex corner of the object rather than a cell tucked
// into a concavity.
func deriveCorners(blocked map[geom.Pos]struct{}, cell geom.Pos, corners map[geom.Pos]struct{}) {
	x, z := cell.X, cell.Z
	isBlocked := func(p geom.Pos) bool {
		_, ok := blocked[p]
		return ok
	}

	s := isBlocked(geom.Pos{X: x, Z: z - 1})
	w := isBlocked(geom.Pos{X: x - 1, Z: z})
	e := isBlocked(geom.Pos{X: x + 1, Z: z})
	n := isBlocked(geom.Pos{X: x, Z: z + 1})
	sw := isBlocked(geom.Pos{X: x - 1, Z: z - 1})
	se := isBlocked(geom.Pos{X: x + 1, Z: z - 1})
	nw := isBlocked(geom.Pos{X: x - 1, Z: z + 1})
	ne := isBlocked(geom.Pos{X: x + 1, Z: z + 1})

	if !(s || sw || w) {
		corners[geom.Pos{X: x - 1, Z: z - 1}] = struct{}{}
	}
	if !(s || se || e) {
		corners[geom.Pos{X: x + 1, Z: z - 1}] = struct{}{}
	}
	if !(n || nw || w) {
		corners[geom.Pos{X: x - 1, Z: z + 1}] = struct{}{}
	}
	if !(n || ne || e) {
		corners[geom.Pos{X: x + 1, Z: z + 1}] = struct{}{}
	}
}

func sortPositions(ps []geom.Pos) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Z < ps[j].Z
	})
}

// NodesAt returns the corner nodes of the object occupying cell, and false
// if cell is not part of any known object.
func (ix *Index) NodesAt(cell geom.Pos) ([]geom.Pos, bool) {
	if ix == nil {
		return nil, false
	}
	id, ok := ix.cellObject[cell]
	if !ok {
		return nil, false
	}
	return ix.nodes[id], true
}

// ObjectID returns the object occupying cell, and false if cell is not part
// of any known object.
func (ix *Index) ObjectID(cell geom.Pos) (ID, bool) {
	if ix == nil {
		return 0, false
	}
	id, ok := ix.cellObject[cell]
	return id, ok
}

// IsNode reports whether p is a corner node of some object.
func (ix *Index) IsNode(p geom.Pos) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.nodeSet[p]
	return ok
}

// Objects returns the number of distinct objects in the index.
func (ix *Index) Objects() int {
	if ix == nil {
		return 0
	}
	return len(ix.nodes)
}

// Snap returns the node of p's object nearest to p (by geom.Distance), or p
// itself if p is not part of any object. Ties resolve to the first node
// encountered in sorted node order, matching NodesAt's deterministic
// ordering.
func Snap(ix *Index, p geom.Pos) geom.Pos {
	nodes, ok := ix.NodesAt(p)
	if !ok || len(nodes) == 0 {
		return p
	}
	best := nodes[0]
	bestDist := geom.Distance(p, best)
	for _, n := range nodes[1:] {
		if d := geom.Distance(p, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
