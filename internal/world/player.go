package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/render"
)

// Player is the movable viewpoint
type Player struct {
	X, Z    float64
	Heading float64 // Radians

	// Movement intent, toggled by key events
	IsMovingForward bool
	IsRunning       bool

	rules  config.PlayerConfig
	camera config.CameraConfig
}

// NewPlayer creates a player at (x, z) facing the configured initial heading
func NewPlayer(x, z float64, rules config.PlayerConfig, camera config.CameraConfig) *Player {
	return &Player{
		X:       x,
		Z:       z,
		Heading: rules.InitialHeading,
		rules:   rules,
		camera:  camera,
	}
}

// TurnTowardsMouse turns proportionally to the pointer's distance from the
// viewport's horizontal middle. The middle fifth of the width does not turn.
func (p *Player) TurnTowardsMouse(mouseX, mouseY, width, height float64) {
	if mouseX < 0 || mouseX > width || mouseY < 0 || mouseY > height {
		return
	}

	noTurnZoneStart := width * 2 / 5
	noTurnZoneEnd := width * 3 / 5
	if mouseX < noTurnZoneStart || mouseX > noTurnZoneEnd {
		mouseDelta := mouseX - width/2
		p.Heading -= mouseDelta * p.rules.MouseSensitivity
	}
}

// MoveForward advances the player if it intends to move and the destination
// is clear. A blocked move is dropped whole; there is no sliding along walls.
func (p *Player) MoveForward(walls []Wall) {
	if !p.IsMovingForward {
		return
	}

	speed := p.rules.WalkSpeed
	if p.IsRunning {
		speed = p.rules.RunSpeed
	}

	newX := p.X + math.Sin(p.Heading)*speed
	newZ := p.Z + math.Cos(p.Heading)*speed
	if !p.CheckCollision(walls, newX, newZ) {
		p.X = newX
		p.Z = newZ
	}
}

// CheckCollision reports whether (x, z) is within personal space of any wall
func (p *Player) CheckCollision(walls []Wall, x, z float64) bool {
	return overlapsAny(walls, x, z, p.rules.PersonalSpace)
}

// Camera returns the chase viewpoint derived from position and heading
func (p *Player) Camera() render.Camera {
	sin, cos := math.Sincos(p.Heading)
	return render.Camera{
		Eye:    mgl64.Vec3{p.X + sin*p.camera.OffsetX, p.camera.EyeY, p.Z + cos*p.camera.OffsetZ},
		Target: mgl64.Vec3{p.X - sin, p.camera.EyeY, p.Z - cos},
		Up:     mgl64.Vec3{0, 1, 0},
	}
}
