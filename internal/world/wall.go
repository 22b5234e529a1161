// Package world holds the entities of the maze and the per-tick rules that
// move them. All positions are on the ground plane (X, Z); Y grows downward.
package world

// Wall is a static axis-aligned box obstacle centered on (X, Z)
type Wall struct {
	X, Z    float64
	W, H, D float64 // Width (X), height (Y), depth (Z)
}

// NewWall creates a wall
func NewWall(x, z, w, h, d float64) Wall {
	return Wall{X: x, Z: z, W: w, H: h, D: d}
}

// Bounds returns the wall footprint grown by margin on every side
func (w Wall) Bounds(margin float64) (minX, maxX, minZ, maxZ float64) {
	hw := w.W/2 + margin
	hd := w.D/2 + margin
	return w.X - hw, w.X + hw, w.Z - hd, w.Z + hd
}

// Contains reports whether (x, z) lies strictly inside the footprint grown by margin
func (w Wall) Contains(x, z, margin float64) bool {
	minX, maxX, minZ, maxZ := w.Bounds(margin)
	return x > minX && x < maxX && z > minZ && z < maxZ
}

// overlapsAny reports whether any wall contains (x, z), stopping at the first hit
func overlapsAny(walls []Wall, x, z, margin float64) bool {
	for _, wall := range walls {
		if wall.Contains(x, z, margin) {
			return true
		}
	}
	return false
}
