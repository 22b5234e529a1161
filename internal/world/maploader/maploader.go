package maploader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Cell is the decoded meaning of one map character
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellPlayerSpawn
	CellEnemySpawn
)

// Map characters
const (
	WallMarker   = 'X'
	PlayerMarker = 'p'
	EnemyMarker  = 'e'
)

// DefaultRows is the built-in maze
var DefaultRows = []string{
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX",
	"X                         e      X              X",
	"X                       p                       X",
	"X       XXXXXXX   XXX                           X",
	"X       X           X            X              X",
	"X       X   XX  X   XXXXXXXXXX   X              X",
	"X       X   Xe  X   X        X   X              X",
	"X       X   XXXXX   X       eX   X              X",
	"X       X           X     XXXX   X              X",
	"X       XXXXXXXXXXXXX            X              X",
	"X  e                                            X",
	"X                                               X",
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX",
}

// ParseCell maps a map character to its cell. Unknown characters are empty.
func ParseCell(r rune) Cell {
	switch r {
	case WallMarker:
		return CellWall
	case PlayerMarker:
		return CellPlayerSpawn
	case EnemyMarker:
		return CellEnemySpawn
	default:
		return CellEmpty
	}
}

// String returns a readable name for the cell
func (c Cell) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellPlayerSpawn:
		return "player"
	case CellEnemySpawn:
		return "enemy"
	default:
		return "empty"
	}
}

// Placement is a non-empty cell positioned in world space
type Placement struct {
	Cell Cell
	Row  int
	Col  int
	X    float64 // World X of the cell center
	Z    float64 // World Z of the cell center
}

// Layout is a parsed map
type Layout struct {
	Rows       []string
	CellSize   float64
	Placements []Placement
}

// Parse converts rows into world placements in row-major order.
// Rows may have different lengths; each row is centered on its own length.
func Parse(rows []string, cellSize float64) *Layout {
	layout := &Layout{
		Rows:     rows,
		CellSize: cellSize,
	}

	rowCount := float64(len(rows))
	for z, row := range rows {
		cells := []rune(row)
		rowLength := float64(len(cells))
		for x, r := range cells {
			cell := ParseCell(r)
			if cell == CellEmpty {
				continue
			}
			layout.Placements = append(layout.Placements, Placement{
				Cell: cell,
				Row:  z,
				Col:  x,
				X:    (float64(x) - rowLength/2) * cellSize,
				Z:    (float64(z) - rowCount/2) * cellSize,
			})
		}
	}

	return layout
}

// LoadFile reads a text map, one row per line
func LoadFile(path string, cellSize float64) (*Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("map file %s is empty", path)
	}

	return Parse(rows, cellSize), nil
}

// Filter returns the placements of one cell kind
func (l *Layout) Filter(cell Cell) []Placement {
	var out []Placement
	for _, p := range l.Placements {
		if p.Cell == cell {
			out = append(out, p)
		}
	}
	return out
}

// PlayerSpawn returns the player spawn. With several markers the last one wins.
func (l *Layout) PlayerSpawn() (Placement, bool) {
	spawns := l.Filter(CellPlayerSpawn)
	if len(spawns) == 0 {
		return Placement{}, false
	}
	return spawns[len(spawns)-1], true
}

// PlayerSpawnCount returns how many player markers the map holds
func (l *Layout) PlayerSpawnCount() int {
	return len(l.Filter(CellPlayerSpawn))
}
