package world

import (
	"testing"

	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/world/maploader"
)

func TestNewWorldFromLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	layout := maploader.Parse([]string{
		"XXXXX",
		"Xp eX",
		"XXXXX",
	}, cfg.Map.CellSize)

	w := New(layout, cfg)

	if len(w.Walls) != 12 {
		t.Errorf("Expected 12 walls, got %d", len(w.Walls))
	}
	if len(w.Enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(w.Enemies))
	}
	if w.Player == nil {
		t.Fatal("Expected a player")
	}

	// (1 - 2.5) * 150, (1 - 1.5) * 150
	if w.Player.X != -225 || w.Player.Z != -75 {
		t.Errorf("Expected player at (-225, -75), got (%.1f, %.1f)", w.Player.X, w.Player.Z)
	}
	if w.Player.Heading != -1 {
		t.Errorf("Expected initial heading -1, got %.2f", w.Player.Heading)
	}
	if w.Enemies[0].X != 75 || w.Enemies[0].R != 50 {
		t.Errorf("Expected enemy at x=75 radius 50, got x=%.1f r=%.1f", w.Enemies[0].X, w.Enemies[0].R)
	}

	wall := w.Walls[0]
	if wall.W != 150 || wall.D != 150 || wall.H != 200 {
		t.Errorf("Expected wall 150x200x150, got %.0fx%.0fx%.0f", wall.W, wall.H, wall.D)
	}
}

func TestNewWorldDuplicatePlayerLastWins(t *testing.T) {
	cfg := config.DefaultConfig()
	w := New(maploader.Parse([]string{"p p"}, 100), cfg)

	if w.Player == nil || w.Player.X != 50 {
		t.Errorf("Expected last player marker to win")
	}
}

func TestWorldWithoutPlayer(t *testing.T) {
	cfg := config.DefaultConfig()
	w := New(maploader.Parse([]string{"XeX"}, 150), cfg)

	if w.Player != nil {
		t.Fatal("Expected no player")
	}
	if w.Fire() {
		t.Error("Expected fire to do nothing without a player")
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("Expected no projectiles, got %d", len(w.Projectiles))
	}
	if _, ok := w.Camera(); ok {
		t.Error("Expected no camera without a player")
	}

	w.Step(100, 100, 920, 600)
}

func TestFireUsesPlayerPose(t *testing.T) {
	cfg := config.DefaultConfig()
	w := New(maploader.Parse([]string{"p"}, 150), cfg)
	w.Player.X, w.Player.Z, w.Player.Heading = 0, 0, 0

	if !w.Fire() {
		t.Fatal("Expected fire to succeed")
	}
	if len(w.Projectiles) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(w.Projectiles))
	}
	p := w.Projectiles[0]
	if p.X != 0 || p.Z != 10 || p.Heading != 0 {
		t.Errorf("Expected projectile at (0, 10) heading 0, got (%.1f, %.1f) heading %.2f", p.X, p.Z, p.Heading)
	}
}

func TestAdvanceProjectilesRemovesEachQualifyingOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	w := &World{
		Walls: []Wall{NewWall(0, 200, 150, 200, 150)},
		cfg:   cfg,
	}

	// Two adjacent removals followed by a survivor, then another removal and survivor
	w.Projectiles = []Projectile{
		{X: 915, Z: 0, Heading: 1.5707963267948966, Speed: 15, Size: 10}, // leaves to the right
		{X: 0, Z: 120, Heading: 0, Speed: 15, Size: 10},                  // enters the wall
		{X: -300, Z: 0, Heading: 0, Speed: 15, Size: 10},                 // survives
		{X: 0, Z: -590, Heading: 3.141592653589793, Speed: 15, Size: 10}, // leaves to the top
		{X: 300, Z: 0, Heading: 0, Speed: 15, Size: 10},                  // survives
	}

	removed := w.AdvanceProjectiles(920, 600)
	if removed != 3 {
		t.Errorf("Expected 3 removals, got %d", removed)
	}
	if len(w.Projectiles) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(w.Projectiles))
	}
	if w.Projectiles[0].X != -300 || w.Projectiles[0].Z != 15 {
		t.Errorf("Expected first survivor advanced to (-300, 15), got (%.1f, %.1f)", w.Projectiles[0].X, w.Projectiles[0].Z)
	}
	if w.Projectiles[1].X != 300 || w.Projectiles[1].Z != 15 {
		t.Errorf("Expected second survivor advanced to (300, 15), got (%.1f, %.1f)", w.Projectiles[1].X, w.Projectiles[1].Z)
	}
}

func TestStepMovesPlayerAfterTurning(t *testing.T) {
	cfg := config.DefaultConfig()
	w := New(maploader.Parse([]string{"p"}, 150), cfg)
	w.Player.X, w.Player.Z, w.Player.Heading = 0, 0, 0
	w.Player.IsMovingForward = true

	// Pointer centered: no turn, straight walk
	w.Step(460, 300, 920, 600)
	if w.Player.X != 0 || w.Player.Z != -10 {
		t.Errorf("Expected player at (0, -10), got (%.2f, %.2f)", w.Player.X, w.Player.Z)
	}

	cam, ok := w.Camera()
	if !ok {
		t.Fatal("Expected a camera")
	}
	if cam.Eye.Z() != 40 {
		t.Errorf("Expected eye z=40, got %.2f", cam.Eye.Z())
	}
}
