package gridpath

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gridpath-dev/gridpath/geom"
	"github.com/gridpath-dev/gridpath/objects"
	"github.com/gridpath-dev/gridpath/pathfind"
)

// Map holds a mutable set of blocked cells and, once Precompute has run, the
// derived object index that queries are served from. The zero value is not
// usable; construct with New.
type Map struct {
	id     uuid.UUID
	cfg    config
	mu     sync.RWMutex
	blocked map[geom.Pos]struct{}
	idx    *objects.Index
}

// New returns an empty, queryable (but object-free) Map. Call AddObjects and
// Precompute before running FindPath against any obstacles.
func New(opts ...Option) *Map {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Map{
		id:      uuid.New(),
		cfg:     cfg,
		blocked: make(map[geom.Pos]struct{}),
	}
	m.idx = objects.Build(m.blocked)
	return m
}

// WithObjects returns a new Map seeded with cells already blocked and
// precomputed, a convenience for tests, benchmarks, and scenario loading
// where the caller has a complete obstacle set up front.
func WithObjects(cells []geom.Pos, opts ...Option) *Map {
	m := New(opts...)
	m.AddObjects(cells...)
	m.Precompute()
	return m
}

// ID returns the Map's construction-time identifier, attached to every log
// record this Map emits so concurrent maps can be told apart.
func (m *Map) ID() uuid.UUID {
	return m.id
}

// AddObjects marks each of cells as blocked. It does not re-Precompute;
// callers must call Precompute before the next FindPath to see the change.
func (m *Map) AddObjects(cells ...geom.Pos) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cells {
		m.blocked[c] = struct{}{}
	}
}

// RemoveObjects clears each of cells from the blocked set. It does not
// re-Precompute; callers must call Precompute before the next FindPath to
// see the change.
func (m *Map) RemoveObjects(cells ...geom.Pos) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cells {
		delete(m.blocked, c)
	}
}

// Precompute rebuilds the object index from the current blocked set. It must
// be called after any AddObjects/RemoveObjects call and before the next
// FindPath observes the mutation; until it is, FindPath continues to query
// the previous, now possibly stale, index.
func (m *Map) Precompute() {
	start := time.Now()

	m.mu.Lock()
	blocked := make(map[geom.Pos]struct{}, len(m.blocked))
	for c := range m.blocked {
		blocked[c] = struct{}{}
	}
	m.mu.Unlock()

	idx := objects.Build(blocked)

	m.mu.Lock()
	m.idx = idx
	m.mu.Unlock()

	m.cfg.logger.Debug("precompute",
		slog.String("map", m.id.String()),
		slog.Int("blocked", len(blocked)),
		slog.Int("objects", idx.Objects()),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// FindPath searches for an obstacle-free polyline from start to end. It
// returns false if either endpoint cannot be connected to the other over the
// visibility graph — most commonly because the goal sits inside an object
// none of whose corner nodes are visible from any node start's search can
// reach.
//
// Either endpoint may itself be blocked; it is snapped to the nearest corner
// node of its enclosing object before the search runs.
func (m *Map) FindPath(start, end geom.Pos) ([]geom.Pos, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path, ok := pathfind.FindPath(m.isBlockedLocked, m.idx, start, end)
	m.cfg.logger.Debug("find_path",
		slog.String("map", m.id.String()),
		slog.Any("start", start),
		slog.Any("end", end),
		slog.Bool("found", ok),
	)
	return path, ok
}

// IsBlocked reports whether (x, z) is a blocked cell.
func (m *Map) IsBlocked(x, z int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isBlockedLocked(geom.Pos{X: x, Z: z})
}

// isBlockedLocked is IsBlocked's core, callable while mu is already held (for
// either read or write) by the caller.
func (m *Map) isBlockedLocked(p geom.Pos) bool {
	_, ok := m.blocked[p]
	return ok
}

// Blocks returns every blocked cell, in no particular order. The returned
// slice is a fresh copy; mutating it does not affect the Map.
func (m *Map) Blocks() []geom.Pos {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]geom.Pos, 0, len(m.blocked))
	for p := range m.blocked {
		out = append(out, p)
	}
	return out
}

// Bounds returns (minX, maxX, minZ, maxZ) over the blocked set. On an empty
// map it returns the sentinel (0, 0, 0, 0) rather than leaking an unbounded
// fold's identity values.
func (m *Map) Bounds() (minX, maxX, minZ, maxZ int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.blocked) == 0 {
		return 0, 0, 0, 0
	}
	first := true
	for p := range m.blocked {
		if first {
			minX, maxX, minZ, maxZ = p.X, p.X, p.Z, p.Z
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return minX, maxX, minZ, maxZ
}

// ObjectNodes returns the corner nodes of the object occupying p, and false
// if p is not part of any known object.
func (m *Map) ObjectNodes(p geom.Pos) ([]geom.Pos, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	nodes, ok := m.idx.NodesAt(p)
	if !ok {
		return nil, false
	}
	out := make([]geom.Pos, len(nodes))
	copy(out, nodes)
	return out, true
}

// IsNode reports whether p is a corner node of some object.
func (m *Map) IsNode(p geom.Pos) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.idx.IsNode(p)
}

// ObjectCount returns the number of distinct objects in the current index.
func (m *Map) ObjectCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.idx.Objects()
}
