package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/corridor/internal/render"
)

var (
	skyColor        = color.RGBA{0, 191, 255, 255}   // deepskyblue
	floorColor      = color.RGBA{60, 179, 113, 255}  // mediumseagreen
	wallColor       = color.RGBA{150, 150, 150, 255}
	enemyColor      = color.RGBA{255, 0, 0, 255}
	projectileColor = color.RGBA{0, 0, 0, 255}
)

// Draw renders the game to the frame.
func (g *Game) Draw(frame render.Frame) {
	frame.Background(skyColor)

	lights := g.Config.Lighting
	frame.AmbientLight(lights.Ambient)
	frame.DirectionalLight(lights.Directional, mgl64.Vec3(lights.Direction))

	if g.HasCamera {
		frame.SetCamera(g.Camera)
	}

	g.drawFloor(frame)
	g.drawWalls(frame)
	g.drawProjectiles(frame)
	g.drawEnemies(frame)
	g.drawHUD(frame)
}

func (g *Game) drawFloor(frame render.Frame) {
	w, h := float64(g.ScreenWidth), float64(g.ScreenHeight)
	frame.Plane(mgl64.Vec3{0, 0, 0}, w*10, h*10, floorColor)
}

func (g *Game) drawWalls(frame render.Frame) {
	for _, wall := range g.World.Walls {
		// Sit on the floor; negative Y is up
		frame.Box(mgl64.Vec3{wall.X, -wall.H / 2, wall.Z}, mgl64.Vec3{wall.W, wall.H, wall.D}, wallColor)
	}
}

func (g *Game) drawProjectiles(frame render.Frame) {
	for _, p := range g.World.Projectiles {
		frame.Sphere(mgl64.Vec3{p.X, -p.Size / 2, p.Z}, p.Size, projectileColor)
	}
}

func (g *Game) drawEnemies(frame render.Frame) {
	for _, enemy := range g.World.Enemies {
		frame.Sphere(mgl64.Vec3{enemy.X, -enemy.R, enemy.Z}, enemy.R, enemyColor)
	}
}

func (g *Game) drawHUD(frame render.Frame) {
	if !g.ShowHUD {
		return
	}
	player := g.World.Player
	if player == nil {
		frame.Text("no player on this map", 8, 8)
		return
	}
	frame.Text(fmt.Sprintf("pos %.0f,%.0f  shots %d  tick %d", player.X, player.Z, len(g.World.Projectiles), g.FrameCount), 8, 8)
}
