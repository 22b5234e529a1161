package world

import (
	"log"

	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/world/maploader"
)

// World owns every entity of a running maze. Player is nil when the map has
// no spawn marker; all player logic is skipped in that case.
type World struct {
	Walls       []Wall
	Enemies     []Enemy
	Projectiles []Projectile
	Player      *Player

	cfg *config.Config
}

// New builds a world from a parsed map
func New(layout *maploader.Layout, cfg *config.Config) *World {
	w := &World{cfg: cfg}

	for _, p := range layout.Placements {
		switch p.Cell {
		case maploader.CellWall:
			w.Walls = append(w.Walls, NewWall(p.X, p.Z, layout.CellSize, cfg.Map.WallHeight, layout.CellSize))
		case maploader.CellEnemySpawn:
			w.Enemies = append(w.Enemies, NewEnemy(p.X, p.Z, cfg.Enemy.Radius))
		}
	}

	if spawn, ok := layout.PlayerSpawn(); ok {
		if n := layout.PlayerSpawnCount(); n > 1 {
			log.Printf("Warning: map has %d player markers, using the last at row %d col %d", n, spawn.Row, spawn.Col)
		}
		w.Player = NewPlayer(spawn.X, spawn.Z, cfg.Player, cfg.Camera)
	} else {
		log.Printf("Warning: map has no player marker")
	}

	return w
}

// Fire launches a projectile from the player. It returns false without a player.
func (w *World) Fire() bool {
	if w.Player == nil {
		return false
	}
	w.Projectiles = append(w.Projectiles, NewProjectile(w.Player.X, w.Player.Z, w.Player.Heading, w.cfg.Projectile))
	return true
}

// AdvanceProjectiles moves every projectile one tick and keeps only those
// still in the play area and clear of walls. It returns how many were removed.
// Removal happens before the frame is drawn, so a projectile is never drawn
// at the position that culled it.
func (w *World) AdvanceProjectiles(viewWidth, viewHeight float64) int {
	survivors := make([]Projectile, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		p.Update()
		if p.IsOffScreen(viewWidth, viewHeight) || p.CheckCollision(w.Walls) {
			continue
		}
		survivors = append(survivors, p)
	}
	removed := len(w.Projectiles) - len(survivors)
	w.Projectiles = survivors
	return removed
}

// Step runs one tick: projectiles first, then the player turns and moves.
func (w *World) Step(mouseX, mouseY, viewWidth, viewHeight float64) {
	w.AdvanceProjectiles(viewWidth, viewHeight)

	if w.Player != nil {
		w.Player.TurnTowardsMouse(mouseX, mouseY, viewWidth, viewHeight)
		w.Player.MoveForward(w.Walls)
	}
}

// Camera returns the player's viewpoint, if there is a player
func (w *World) Camera() (render.Camera, bool) {
	if w.Player == nil {
		return render.Camera{}, false
	}
	return w.Player.Camera(), true
}
