package gridpath

import (
	"encoding/json"

	"github.com/gridpath-dev/gridpath/geom"
)

// MarshalJSON serializes the blocked-cell set as a flat array of [x, z]
// pairs. The derived object index is never serialized; it is cheap to
// rebuild and stale-index bugs are worse than a rebuild cost.
func (m *Map) MarshalJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cells := make([][2]int, 0, len(m.blocked))
	for p := range m.blocked {
		cells = append(cells, [2]int{p.X, p.Z})
	}
	return json.Marshal(cells)
}

// UnmarshalJSON restores the blocked-cell set from the [x, z]-pair array
// MarshalJSON produces. It leaves the Map without a fresh object index;
// callers must call Precompute before the next FindPath.
func (m *Map) UnmarshalJSON(data []byte) error {
	var cells [][2]int
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.logger == nil {
		m.cfg = defaultConfig()
	}
	if m.blocked == nil {
		m.blocked = make(map[geom.Pos]struct{}, len(cells))
	}
	for p := range m.blocked {
		delete(m.blocked, p)
	}
	for _, c := range cells {
		m.blocked[geom.Pos{X: c[0], Z: c[1]}] = struct{}{}
	}
	m.idx = nil
	return nil
}
