// Package visual renders a *gridpath.Map — its blocked cells, corner nodes,
// and an optional found path — as a colored grid in a terminal, using
// tcell's cell buffer.
package visual

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gridpath-dev/gridpath"
	"github.com/gridpath-dev/gridpath/geom"
)

var (
	styleBlocked = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleNode    = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorYellow)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorGreen)
	styleFree    = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorGray)
)

// Draw renders m onto screen one cell per lattice point: the box m.Bounds()
// padded by one cell on every side, with its top-left corner at screen
// position (originX, originY), and with an optional path's vertices overlaid
// in a distinct style. Cells past the screen edge and path vertices outside
// the padded box are not drawn. It does not call screen.Show; callers
// control the draw loop's own flush timing.
func Draw(screen tcell.Screen, m *gridpath.Map, path []geom.Pos, originX, originY int) {
	// Corner nodes sit one cell outside the blocked bounding box, so the
	// rendered window is padded by 1 in every direction to include them.
	minX, maxX, minZ, maxZ := m.Bounds()
	minX--
	maxX++
	minZ--
	maxZ++
	width, height := screen.Size()

	pathSet := make(map[geom.Pos]struct{}, len(path))
	for _, p := range path {
		pathSet[p] = struct{}{}
	}
	var start, end geom.Pos
	hasEndpoints := len(path) > 0
	if hasEndpoints {
		start, end = path[0], path[len(path)-1]
	}

	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			sx := originX + (x - minX)
			sy := originY + (z - minZ)
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}

			p := geom.Pos{X: x, Z: z}
			style, ch := cellGlyph(m, p, pathSet)
			if hasEndpoints && p == start {
				style, ch = stylePath.Bold(true), 'S'
			} else if hasEndpoints && p == end {
				style, ch = stylePath.Bold(true), 'E'
			}
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}
}

func cellGlyph(m *gridpath.Map, p geom.Pos, pathSet map[geom.Pos]struct{}) (tcell.Style, rune) {
	if _, onPath := pathSet[p]; onPath {
		return stylePath, '*'
	}
	if m.IsBlocked(p.X, p.Z) {
		return styleBlocked, '#'
	}
	if m.IsNode(p) {
		return styleNode, '+'
	}
	return styleFree, '.'
}
