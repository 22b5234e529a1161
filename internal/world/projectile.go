package world

import (
	"math"

	"chosenoffset.com/corridor/internal/config"
)

// Projectile is a short-lived sphere moving along a fixed heading
type Projectile struct {
	X, Z    float64
	Heading float64 // Radians
	Speed   float64
	Size    float64
}

// NewProjectile spawns a projectile a short distance along heading from
// (x, z) so it does not start inside the firer.
func NewProjectile(x, z, heading float64, cfg config.ProjectileConfig) Projectile {
	return Projectile{
		X:       x + math.Sin(heading)*cfg.SpawnOffset,
		Z:       z + math.Cos(heading)*cfg.SpawnOffset,
		Heading: heading,
		Speed:   cfg.Speed,
		Size:    cfg.Size,
	}
}

// Update advances the projectile one tick. The move is never rejected.
func (p *Projectile) Update() {
	p.X += math.Sin(p.Heading) * p.Speed
	p.Z += math.Cos(p.Heading) * p.Speed
}

// IsOffScreen reports whether the projectile left [-w, w] x [-h, h]
func (p *Projectile) IsOffScreen(w, h float64) bool {
	return p.X < -w || p.X > w || p.Z < -h || p.Z > h
}

// CheckCollision reports whether the projectile is inside any wall's exact footprint
func (p *Projectile) CheckCollision(walls []Wall) bool {
	return overlapsAny(walls, p.X, p.Z, 0)
}
