package world

// Enemy is a static decorative marker. It has no behavior.
type Enemy struct {
	X, Z float64
	R    float64
}

// NewEnemy creates an enemy
func NewEnemy(x, z, radius float64) Enemy {
	return Enemy{X: x, Z: z, R: radius}
}
