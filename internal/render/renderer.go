package render

import (
	"errors"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrQuit is returned from Game.Update to end the run loop cleanly.
var ErrQuit = errors.New("quit requested")

// Camera places the viewpoint. Y grows downward, so an up vector of
// (0, 1, 0) keeps the floor at the bottom of the screen.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// Frame is an immediate-mode 3D drawing surface for one frame.
// Primitives are collected in any order; the backend resolves depth.
type Frame interface {
	// Size returns the frame size in pixels.
	Size() (width, height int)

	// Background sets the clear color.
	Background(clr color.Color)

	// Lighting
	AmbientLight(level float64)
	DirectionalLight(level float64, direction mgl64.Vec3)

	// SetCamera sets the viewpoint used for every primitive in the frame.
	SetCamera(cam Camera)

	// Primitives
	Box(center, size mgl64.Vec3, clr color.Color)
	Sphere(center mgl64.Vec3, radius float64, clr color.Color)
	Plane(center mgl64.Vec3, width, depth float64, clr color.Color)

	// Text draws an overlay string at pixel coordinates.
	Text(str string, x, y int)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsKeyJustReleased(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demo reads
const (
	KeyUp Key = iota
	KeyW
	KeyShift
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(frame Frame)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
