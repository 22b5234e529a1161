package game

import (
	"log"

	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/world"
)

// Sound plays sound effects. A nil Sound is silent.
type Sound interface {
	PlayShot()
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *world.World
	InputMgr     render.InputManager
	Sound        Sound
	Config       *config.Config

	// Viewpoint from the last tick; the default camera until a player exists
	Camera    render.Camera
	HasCamera bool

	// Debug
	FrameCount int
	ShowHUD    bool
}

// New creates a game around a built world.
func New(w *world.World, input render.InputManager, sound Sound, cfg *config.Config) *Game {
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		World:        w,
		InputMgr:     input,
		Sound:        sound,
		Config:       cfg,
		ShowHUD:      true,
	}
	g.UpdateCamera()
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Quit requested")
		return render.ErrQuit
	}

	g.handleInput()

	mouseX, mouseY := g.InputMgr.GetCursorPosition()
	g.World.Step(float64(mouseX), float64(mouseY), float64(g.ScreenWidth), float64(g.ScreenHeight))

	g.UpdateCamera()
	g.FrameCount++
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// UpdateCamera follows the player's viewpoint.
func (g *Game) UpdateCamera() {
	if cam, ok := g.World.Camera(); ok {
		g.Camera = cam
		g.HasCamera = true
	}
}
