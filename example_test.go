package gridpath_test

import (
	"fmt"

	"github.com/gridpath-dev/gridpath"
	"github.com/gridpath-dev/gridpath/geom"
)

// ExampleMap_FindPath demonstrates routing around a single obstacle on the
// diagonal between start and end.
func ExampleMap_FindPath() {
	m := gridpath.New()
	m.AddObjects(geom.Pos{X: 0, Z: 0})
	m.Precompute()

	path, ok := m.FindPath(geom.Pos{X: -5, Z: -5}, geom.Pos{X: 5, Z: 5})
	fmt.Println("found:", ok)
	fmt.Println("vertices:", len(path))
	// Output:
	// found: true
	// vertices: 3
}
